package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sensorfactory/nexus/internal/domain"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestSensorsXLSX(t *testing.T) {
	t.Parallel()

	data, err := SensorsXLSX([]domain.Sensor{
		{ID: "S001", Name: "Temperature Sensor T-100", Type: domain.SensorTypeTemperature,
			Price: 49.99, Stock: 125, LastUpdated: mustDate(t, "2023-06-15")},
		{ID: "S002", Name: "Humidity Sensor H-200", Type: domain.SensorTypeHumidity,
			Price: 39.99, Stock: 85, LastUpdated: mustDate(t, "2023-07-02")},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sensorsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "S001", rows[1][0])
	assert.Equal(t, "Temperature", rows[1][2])
	assert.Equal(t, "125", rows[1][4])
	assert.Equal(t, "2023-07-02", rows[2][6])
}

func TestOrdersXLSX_WritesItemsSheet(t *testing.T) {
	t.Parallel()

	order := domain.Order{
		ID: "O001", ClientID: "C001", Date: mustDate(t, "2023-07-01"), Status: domain.OrderStatusDelivered,
		Items: []domain.OrderItem{
			{SensorID: "S001", Quantity: 10, Price: 49.99},
			{SensorID: "S003", Quantity: 5, Price: 29.99},
		},
		Total: 649.85,
	}

	data, err := OrdersXLSX([]domain.OrderDetail{domain.DetailOf(order, "Acme Industries")})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	orders, err := f.GetRows(ordersSheet)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Acme Industries", orders[1][2])
	assert.Equal(t, "Delivered", orders[1][4])

	items, err := f.GetRows(itemsSheet)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "S003", items[2][1])
}

func TestInvoicePDF(t *testing.T) {
	t.Parallel()

	order := domain.DetailOf(domain.Order{
		ID: "O004", ClientID: "C004", Date: mustDate(t, "2023-07-18"), Status: domain.OrderStatusPending,
		Items: []domain.OrderItem{{SensorID: "S002", Quantity: 10, Price: 39.99}},
		Total: 699.80,
	}, "SmartBuildings Inc")

	withClient, err := InvoicePDF(order, &domain.Client{ID: "C004", Name: "SmartBuildings Inc", Address: "321 Automation Road"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(withClient, []byte("%PDF")))

	withoutClient, err := InvoicePDF(order, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(withoutClient, []byte("%PDF")))
}
