package domain

// ProductSales is the number of units of one catalog sensor across all orders.
type ProductSales struct {
	SensorID string `json:"sensorId"`
	Name     string `json:"name"`
	Units    int    `json:"units"`
}

// Dashboard is the aggregated overview shown on the landing page.
type Dashboard struct {
	InventoryUnits int                `json:"inventoryUnits"`
	ActiveOrders   int                `json:"activeOrders"`
	ClientCount    int                `json:"clientCount"`
	LatestMonth    string             `json:"latestMonth"`
	LatestRevenue  float64            `json:"latestRevenue"`
	RevenueChange  float64            `json:"revenueChange"`
	RecentAlerts   []MaintenanceAlert `json:"recentAlerts"`
	TopProducts    []ProductSales     `json:"topProducts"`
}
