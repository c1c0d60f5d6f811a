package domain

import "math"

// OrderStatus is the fulfilment state of a sales order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the order still needs work.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusPending || s == OrderStatusProcessing
}

// OrderItem is one line of an order.
type OrderItem struct {
	SensorID string  `json:"sensorId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Subtotal returns quantity * price.
func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.Price
}

// Order is a sales order. Total is stored as supplied and never recomputed.
type Order struct {
	ID       string      `json:"id"`
	ClientID string      `json:"clientId"`
	Date     Date        `json:"date"`
	Status   OrderStatus `json:"status"`
	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
}

// ItemsTotal sums the line subtotals, rounded to cents.
func (o Order) ItemsTotal() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Subtotal()
	}
	return math.Round(sum*100) / 100
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}

// SalesDataPoint is the revenue and units sold for one month.
type SalesDataPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Units   int     `json:"units"`
}

// OrderDetail is an order joined with its client's name. ClientName is empty
// when the client no longer exists.
type OrderDetail struct {
	Order
	ClientName string  `json:"clientName"`
	ItemsTotal float64 `json:"itemsTotal"`
}

// DetailOf builds the detail view of o.
func DetailOf(o Order, clientName string) OrderDetail {
	return OrderDetail{Order: o, ClientName: clientName, ItemsTotal: o.ItemsTotal()}
}
