package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/sensorfactory/nexus/internal/domain"
)

// InvoicePDF renders a one-page invoice for an order. client may be nil when
// the client record is gone; the stored name is used then.
func InvoicePDF(order domain.OrderDetail, client *domain.Client) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice %s", order.ID))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", order.Date.String()))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(5)

	name := order.ClientName
	if client != nil {
		name = client.Name
	}
	if name == "" {
		name = order.ClientID
	}
	pdf.Cell(0, 6, fmt.Sprintf("Bill to: %s", name))
	pdf.Ln(5)
	if client != nil {
		if client.Contact != "" {
			pdf.Cell(0, 6, fmt.Sprintf("Attn: %s", client.Contact))
			pdf.Ln(5)
		}
		if client.Address != "" {
			pdf.Cell(0, 6, client.Address)
			pdf.Ln(5)
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Sensor", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Quantity", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Unit Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Subtotal", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, it := range order.Items {
		pdf.CellFormat(50, 6, it.SensorID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", it.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", it.Subtotal()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %.2f", order.Total))
	pdf.Ln(5)
	if order.ItemsTotal != order.Total {
		pdf.SetFont("Arial", "", 9)
		pdf.Cell(0, 6, fmt.Sprintf("Line items sum to %.2f", order.ItemsTotal))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", order.ID, err)
	}
	return buf.Bytes(), nil
}
