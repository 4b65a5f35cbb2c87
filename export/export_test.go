package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RaicyAugusto/dbc2parquet/dbc"
)

type testField struct {
	name     string
	typ      byte
	length   byte
	decimals byte
}

// buildTable assembles a decompressed buffer (32-byte header, 32-byte
// descriptors, 0x0D terminator, fixed-length records) and decodes it.
// Rows shorter than the record length are space-padded; each record value
// is laid out back to back behind the deletion-flag byte.
func buildTable(tb testing.TB, language byte, fields []testField, rows []string) *dbc.Table {
	tb.Helper()

	recordLen := 1
	for _, f := range fields {
		recordLen += int(f.length)
	}
	headerLen := 32 + len(fields)*32 + 1

	buf := make([]byte, 32)
	buf[0] = 0x03
	buf[4] = byte(len(rows))
	buf[8] = byte(headerLen)
	buf[9] = byte(headerLen >> 8)
	buf[10] = byte(recordLen)
	buf[11] = byte(recordLen >> 8)
	buf[29] = language

	for _, f := range fields {
		d := make([]byte, 32)
		copy(d[:11], f.name)
		d[11] = f.typ
		d[16] = f.length
		d[17] = f.decimals
		buf = append(buf, d...)
	}
	buf = append(buf, 0x0D)

	for _, r := range rows {
		rec := make([]byte, recordLen)
		rec[0] = ' '
		n := copy(rec[1:], r)
		for i := 1 + n; i < recordLen; i++ {
			rec[i] = ' '
		}
		buf = append(buf, rec...)
	}

	table, err := dbc.NewTable(buf)
	require.NoError(tb, err)
	return table
}
