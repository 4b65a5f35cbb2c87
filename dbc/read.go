package dbc

// FieldBytes returns the raw bytes of column col in record row as a view
// into the table's buffer. Callers must not write to it. col and row must
// be in range; validate against NumCols/NumRows first.
func (t *Table) FieldBytes(col, row int) []byte {
	record := int(t.header.HeaderLength) + row*int(t.header.RecordLength)
	start := record + t.fields[col].Offset
	return t.buf[start : start+int(t.fields[col].Length)]
}

// Trim strips leading and trailing whitespace and control bytes, returning
// a sub-slice. The underlying buffer is never modified, so it is safe on
// views returned by FieldBytes.
func Trim(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && b[start] <= SPACE {
		start++
	}
	for end > start && b[end-1] <= SPACE {
		end--
	}
	return b[start:end]
}

// FieldValue returns the trimmed, decoded value of (col, row) as an owned
// string. Convenience for scalar lookups; the batch path works on the raw
// bytes directly.
func (t *Table) FieldValue(col, row int) string {
	trimmed := Trim(t.FieldBytes(col, row))
	if len(trimmed) == 0 {
		return ""
	}
	decoded, err := t.conv.Decode(trimmed)
	if err != nil {
		decoded = trimmed
	}
	return string(decoded)
}
