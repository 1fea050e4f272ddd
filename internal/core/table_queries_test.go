package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var staffColumns = []string{"staff_id", "warehouse_id", "full_name", "position_id", "inn", "hired_at"}

func TestListSQL(t *testing.T) {
	assert.Contains(t, listSQL("staff"), "JOIN warehouses w")
	assert.Contains(t, listSQL("staff"), "ORDER BY s.staff_id")
	assert.Equal(t, "SELECT * FROM warehouses", listSQL("warehouses"))
}

func TestBuildFilterSQL(t *testing.T) {
	sql, args, err := buildFilterSQL("staff", staffColumns, "full_name", "Petrov")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM staff WHERE CAST(full_name AS TEXT) ILIKE $1", sql)
	assert.Equal(t, []any{"%Petrov%"}, args)
}

func TestBuildFilterSQL_Validation(t *testing.T) {
	tests := []struct {
		name   string
		column string
		text   string
	}{
		{"empty column", "", "Petrov"},
		{"empty text", "full_name", ""},
		{"unknown column", "warehouse", "Main"},
		{"injection attempt", "full_name; DROP TABLE staff", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildFilterSQL("staff", staffColumns, tt.column, tt.text)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
			assert.Empty(t, sql)
			assert.Nil(t, args)
		})
	}
}

func TestBuildSortSQL(t *testing.T) {
	sql, err := buildSortSQL("staff", staffColumns, "hired_at", "desc")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM staff ORDER BY hired_at DESC", sql)

	sql, err = buildSortSQL("staff", staffColumns, "hired_at", "")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM staff ORDER BY hired_at ASC", sql)
}

func TestBuildSortSQL_Validation(t *testing.T) {
	_, err := buildSortSQL("staff", staffColumns, "nope", "ASC")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = buildSortSQL("staff", staffColumns, "hired_at", "SIDEWAYS")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = buildSortSQL("staff", staffColumns, "", "ASC")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestBuildInsertSQL(t *testing.T) {
	sql, args, err := buildInsertSQL("staff", staffColumns, map[string]string{
		"warehouse_id": "1",
		"full_name":    "Anna Petrova",
		"position_id":  "2",
		"inn":          "",
		"hired_at":     "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO staff (warehouse_id, full_name, position_id, inn, hired_at) VALUES ($1, $2, $3, $4, $5)", sql)
	require.Len(t, args, 5)
	assert.Equal(t, "1", args[0])
	assert.Equal(t, "Anna Petrova", args[1])
	assert.Nil(t, args[3], "blank non-date input becomes NULL")
	assert.Equal(t, "2024-03-01", args[4])
}

func TestBuildUpdateSQL(t *testing.T) {
	sql, args, err := buildUpdateSQL("staff", staffColumns, int64(7), map[string]string{
		"warehouse_id": "2",
		"full_name":    "Igor Smirnov",
		"position_id":  "1",
		"inn":          "500100732260",
		"hired_at":     "2023-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE staff SET warehouse_id = $1, full_name = $2, position_id = $3, inn = $4, hired_at = $5 WHERE staff_id = $6", sql)
	require.Len(t, args, 6)
	assert.Equal(t, int64(7), args[5], "identity value is the last bound parameter")
}

func TestBuildDeleteSQL(t *testing.T) {
	sql, args, err := buildDeleteSQL("staff", staffColumns, int64(3))
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM staff WHERE staff_id = $1", sql)
	assert.Equal(t, []any{int64(3)}, args)

	_, _, err = buildDeleteSQL("staff", nil, int64(3))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestCellValue_Defaults(t *testing.T) {
	assert.Equal(t, "hello", cellValue("inn", "hello"))
	assert.Nil(t, cellValue("inn", ""))

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, cellValue("invoice_date", ""))

	ts, ok := cellValue("created_at", "").(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(ts, today))

	// last_updated is a timestamp, not an input date field
	assert.Nil(t, cellValue("last_updated", ""))
	assert.Nil(t, cellValue("datetime", ""))
}
