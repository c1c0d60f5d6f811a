// Package export renders inventory and sales data as XLSX workbooks and
// PDF invoices.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sensorfactory/nexus/internal/domain"
)

// Content types of the rendered documents.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

const (
	sensorsSheet = "sensors"
	ordersSheet  = "orders"
	itemsSheet   = "items"
)

// SensorsXLSX renders the catalog as a single-sheet workbook.
func SensorsXLSX(sensors []domain.Sensor) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sensorsSheet); err != nil {
		return nil, fmt.Errorf("export sensors: %w", err)
	}

	header := []any{"ID", "Name", "Type", "Price", "Stock", "Description", "Last Updated"}
	if err := f.SetSheetRow(sensorsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export sensors: %w", err)
	}
	for i, s := range sensors {
		row := []any{s.ID, s.Name, s.Type.String(), s.Price, s.Stock, s.Description, s.LastUpdated.String()}
		if err := f.SetSheetRow(sensorsSheet, cell("A", i+2), &row); err != nil {
			return nil, fmt.Errorf("export sensors: %w", err)
		}
	}

	return write(f)
}

// OrdersXLSX renders orders on one sheet and their line items on another.
func OrdersXLSX(orders []domain.OrderDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, fmt.Errorf("export orders: %w", err)
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, fmt.Errorf("export orders: %w", err)
	}

	header := []any{"ID", "Client ID", "Client", "Date", "Status", "Items Total", "Total"}
	if err := f.SetSheetRow(ordersSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export orders: %w", err)
	}
	itemHeader := []any{"Order ID", "Sensor ID", "Quantity", "Price", "Subtotal"}
	if err := f.SetSheetRow(itemsSheet, "A1", &itemHeader); err != nil {
		return nil, fmt.Errorf("export orders: %w", err)
	}

	itemRow := 2
	for i, o := range orders {
		row := []any{o.ID, o.ClientID, o.ClientName, o.Date.String(), o.Status.String(), o.ItemsTotal, o.Total}
		if err := f.SetSheetRow(ordersSheet, cell("A", i+2), &row); err != nil {
			return nil, fmt.Errorf("export orders: %w", err)
		}
		for _, it := range o.Items {
			line := []any{o.ID, it.SensorID, it.Quantity, it.Price, it.Subtotal()}
			if err := f.SetSheetRow(itemsSheet, cell("A", itemRow), &line); err != nil {
				return nil, fmt.Errorf("export orders: %w", err)
			}
			itemRow++
		}
	}

	return write(f)
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func write(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
