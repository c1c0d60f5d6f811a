package sqlstore

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensorfactory/nexus/internal/config"
)

func TestDialect_Placeholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		driver     string
		wantDriver string
		wantSQL    string
	}{
		{config.DriverPostgres, "pgx", "UPDATE sensors SET stock = $1 WHERE id = $2"},
		{config.DriverSQLite, "sqlite", "UPDATE sensors SET stock = ? WHERE id = ?"},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			name, placeholder, err := dialect(tt.driver)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, name)

			query, args, err := sq.StatementBuilder.PlaceholderFormat(placeholder).
				Update("sensors").Set("stock", 120).Where(sq.Eq{"id": "S001"}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, []any{120, "S001"}, args)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), config.StoreConfig{Driver: "mongo", DSN: "x"})
	assert.ErrorContains(t, err, `unsupported driver "mongo"`)
}
