// Package dbc decodes compressed DBC table files (a DBF header plus a
// PKWARE-imploded record payload) into an in-memory table. The whole record
// area is decompressed into one buffer up front; header, field descriptors
// and field values are then read from that buffer only.
package dbc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RaicyAugusto/dbc2parquet/charset"
)

const (
	SPACE = 0x20
	EOF   = 0x1A
	NUL   = 0x00
)

// Table is a fully decoded table. It owns buf; nothing returned by its
// accessors is written to after decode.
type Table struct {
	buf    []byte
	header Header
	fields []FieldDescriptor
	conv   charset.Converter
}

// NewTable parses an already-decompressed buffer: the fixed header, the
// field descriptor array, and the per-field record offsets. The buffer is
// retained as the record storage.
func NewTable(buf []byte) (*Table, error) {
	header, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}
	fields, err := parseFields(buf, header)
	if err != nil {
		return nil, err
	}
	return &Table{
		buf:    buf,
		header: header,
		fields: fields,
		conv:   charset.New(codePageName(header.LanguageDriverID)),
	}, nil
}

// Load reads a compressed table from r. The header block is stored raw;
// the record payload that follows it is compressed, with 4 reserved bytes
// in between that are skipped.
func Load(r io.ReadSeeker) (*Table, error) {
	var raw [2]byte
	if _, err := r.Seek(8, io.SeekStart); err != nil {
		return nil, fmt.Errorf("dbc: seek header length: %w", err)
	}
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header length at offset 8: %v", ErrTruncatedHeader, err)
	}
	headerLen := uint16le(raw[:])

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("dbc: seek start: %w", err)
	}
	buf := make([]byte, headerLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: reading %d header bytes: %v", ErrTruncatedHeader, headerLen, err)
	}

	if _, err := r.Seek(int64(headerLen)+4, io.SeekStart); err != nil {
		return nil, fmt.Errorf("dbc: seek record payload: %w", err)
	}
	records, err := decompress(r)
	if err != nil {
		return nil, err
	}

	return NewTable(append(buf, records...))
}

// LoadFile opens and decodes the table file at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// NumRows returns the record count from the header.
func (t *Table) NumRows() int {
	return int(t.header.NumRecords)
}

// NumCols returns the number of field descriptors.
func (t *Table) NumCols() int {
	return len(t.fields)
}

// Header returns the parsed file header.
func (t *Table) Header() Header {
	return t.header
}

// Fields returns the field descriptors in file order.
func (t *Table) Fields() []FieldDescriptor {
	return t.fields
}

// Encoding returns the code page name resolved from the header language
// byte.
func (t *Table) Encoding() string {
	return t.conv.Name()
}

// Converter returns the text converter for the table's code page.
func (t *Table) Converter() charset.Converter {
	return t.conv
}

// FieldName returns the decoded name of column col.
func (t *Table) FieldName(col int) string {
	name := fieldName(t.fields[col])
	decoded, err := t.conv.Decode(name)
	if err != nil {
		decoded = name
	}
	return strings.TrimSpace(string(decoded))
}
