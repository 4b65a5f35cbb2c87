// Package export materializes decoded tables into typed Arrow batches and
// writes them out as Parquet.
package export

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/RaicyAugusto/dbc2parquet/dbc"
)

// arrowType maps a field descriptor to the column's logical type. Numerics
// without decimals fit int32 up to 9 digits; longer ones need int64.
// Unrecognized type tags stay in the schema as text columns so column count
// and order are preserved.
func arrowType(f dbc.FieldDescriptor) arrow.DataType {
	switch f.Type {
	case dbc.TypeCharacter, dbc.TypeMemo:
		return arrow.BinaryTypes.String
	case dbc.TypeNumeric:
		if f.Decimals > 0 {
			return arrow.PrimitiveTypes.Float64
		}
		if f.Length <= 9 {
			return arrow.PrimitiveTypes.Int32
		}
		return arrow.PrimitiveTypes.Int64
	case dbc.TypeDate:
		return arrow.FixedWidthTypes.Date32
	case dbc.TypeLogical:
		return arrow.FixedWidthTypes.Boolean
	default:
		return arrow.BinaryTypes.String
	}
}

// Schema derives the Arrow schema for a decoded table, one nullable field
// per descriptor, in file order.
func Schema(t *dbc.Table) *arrow.Schema {
	fields := make([]arrow.Field, t.NumCols())
	for i, f := range t.Fields() {
		fields[i] = arrow.Field{
			Name:     t.FieldName(i),
			Type:     arrowType(f),
			Nullable: true,
		}
	}
	return arrow.NewSchema(fields, nil)
}
