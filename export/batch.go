package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/RaicyAugusto/dbc2parquet/charset"
	"github.com/RaicyAugusto/dbc2parquet/dbc"
)

// BuildBatch materializes rows [start, start+count) of the table as one
// Arrow record, clipping the range to the table's row count. Column order
// follows the schema, which must have been derived from the same table.
// The caller releases the returned record.
//
// A field whose trimmed content is empty becomes null regardless of type;
// per-value parse or conversion failures also degrade to null and never
// abort the batch.
func BuildBatch(t *dbc.Table, schema *arrow.Schema, start, count int) (arrow.Record, error) {
	if schema.NumFields() != t.NumCols() {
		return nil, fmt.Errorf("export: schema has %d fields, table has %d columns", schema.NumFields(), t.NumCols())
	}

	rows := count
	if start+count > t.NumRows() {
		rows = t.NumRows() - start
	}
	if rows < 0 {
		rows = 0
	}

	rb := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer rb.Release()

	conv := t.Converter()
	for col, field := range t.Fields() {
		b := rb.Field(col)
		for i := 0; i < rows; i++ {
			appendValue(b, field, dbc.Trim(t.FieldBytes(col, start+i)), conv)
		}
	}
	return rb.NewRecord(), nil
}

func appendValue(b array.Builder, f dbc.FieldDescriptor, v []byte, conv charset.Converter) {
	if len(v) == 0 {
		b.AppendNull()
		return
	}

	switch f.Type {
	case dbc.TypeCharacter, dbc.TypeMemo:
		sb := b.(*array.StringBuilder)
		if isASCII(v) {
			sb.Append(string(v))
			return
		}
		decoded, err := conv.Decode(v)
		if err != nil {
			b.AppendNull()
			return
		}
		sb.Append(string(decoded))

	case dbc.TypeNumeric:
		switch {
		case f.Decimals > 0:
			val, err := strconv.ParseFloat(string(v), 64)
			if err != nil {
				b.AppendNull()
				return
			}
			b.(*array.Float64Builder).Append(val)
		case f.Length <= 9:
			val, err := strconv.ParseInt(string(v), 10, 32)
			if err != nil {
				b.AppendNull()
				return
			}
			b.(*array.Int32Builder).Append(int32(val))
		default:
			val, err := strconv.ParseInt(string(v), 10, 64)
			if err != nil {
				b.AppendNull()
				return
			}
			b.(*array.Int64Builder).Append(val)
		}

	case dbc.TypeLogical:
		// Single-character T/t/1/Y/y is true; any other non-empty content,
		// multi-character included, is false. No null state once non-empty.
		c := v[0]
		truth := len(v) == 1 && (c == 'T' || c == 't' || c == '1' || c == 'Y' || c == 'y')
		b.(*array.BooleanBuilder).Append(truth)

	case dbc.TypeDate:
		days, ok := parseDate(v)
		if !ok {
			b.AppendNull()
			return
		}
		b.(*array.Date32Builder).Append(days)

	default:
		b.AppendNull()
	}
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c > 0x7F {
			return false
		}
	}
	return true
}

// parseDate scans an 8-digit YYYYMMDD token into days since the Unix epoch.
// The value is a naive civil date; no time zone is involved.
func parseDate(v []byte) (arrow.Date32, bool) {
	if len(v) != 8 {
		return 0, false
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	year, _ := strconv.Atoi(string(v[:4]))
	month, _ := strconv.Atoi(string(v[4:6]))
	day, _ := strconv.Atoi(string(v[6:8]))
	return arrow.Date32FromTime(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)), true
}
