package export

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/require"
)

func TestSchemaTypeMapping(t *testing.T) {
	fields := []testField{
		{"NAME", 'C', 10, 0},
		{"SMALL", 'N', 9, 0},
		{"BIG", 'N', 10, 0},
		{"PRICE", 'N', 8, 2},
		{"BORN", 'D', 8, 0},
		{"ACTIVE", 'L', 1, 0},
		{"WEIRD", 'X', 5, 0},
	}
	table := buildTable(t, 0x02, fields, nil)

	schema := Schema(table)
	require.Equal(t, len(fields), schema.NumFields())

	want := []arrow.DataType{
		arrow.BinaryTypes.String,
		arrow.PrimitiveTypes.Int32, // length 9 is the last 32-bit width
		arrow.PrimitiveTypes.Int64, // length 10 crosses to 64-bit
		arrow.PrimitiveTypes.Float64,
		arrow.FixedWidthTypes.Date32,
		arrow.FixedWidthTypes.Boolean,
		arrow.BinaryTypes.String, // unknown tags stay as text columns
	}
	for i, f := range fields {
		got := schema.Field(i)
		require.Equal(t, f.name, got.Name)
		require.True(t, arrow.TypeEqual(want[i], got.Type), "field %s", f.name)
		require.True(t, got.Nullable)
	}
}
