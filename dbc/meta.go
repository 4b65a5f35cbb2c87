package dbc

import (
	"bytes"
	"fmt"
)

const (
	headerSize    = 32
	fieldDescSize = 32
)

// Header represents the fixed-size header at the start of the table file.
type Header struct {
	Version          byte
	LastUpdate       [3]byte // YY MM DD as stored
	NumRecords       uint32
	HeaderLength     uint16
	RecordLength     uint16
	Transaction      byte
	EncryptFlag      byte
	MDXFlag          byte
	LanguageDriverID byte
}

// FieldDescriptor represents one entry of the field descriptor array that
// follows the header. Offset is not stored in the file; it is computed by
// accumulating the lengths of the preceding fields, starting at 1 to skip
// the per-record deletion-flag byte.
type FieldDescriptor struct {
	Name     [11]byte
	Type     byte
	Length   byte
	Decimals byte
	Offset   int
}

// Field type tags.
const (
	TypeCharacter = 'C'
	TypeNumeric   = 'N'
	TypeDate      = 'D'
	TypeLogical   = 'L'
	TypeMemo      = 'M'
)

func parseHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncatedHeader, len(buf), headerSize)
	}
	h := Header{
		Version:          buf[0],
		NumRecords:       uint32le(buf[4:8]),
		HeaderLength:     uint16le(buf[8:10]),
		RecordLength:     uint16le(buf[10:12]),
		Transaction:      buf[14],
		EncryptFlag:      buf[15],
		MDXFlag:          buf[28],
		LanguageDriverID: buf[29],
	}
	copy(h.LastUpdate[:], buf[1:4])
	return h, nil
}

// numCols derives the field count from the header length. A header that
// only covers the fixed part (or less) has no columns.
func numCols(h Header) int {
	if int(h.HeaderLength) > headerSize {
		return (int(h.HeaderLength) - headerSize - 1) / fieldDescSize
	}
	return 0
}

func parseFields(buf []byte, h Header) ([]FieldDescriptor, error) {
	cols := numCols(h)
	if cols == 0 {
		return nil, fmt.Errorf("%w: header length %d", ErrNoColumns, h.HeaderLength)
	}
	need := headerSize + cols*fieldDescSize
	if len(buf) < need {
		return nil, fmt.Errorf("%w: got %d bytes, need %d for %d fields", ErrTruncatedHeader, len(buf), need, cols)
	}

	fields := make([]FieldDescriptor, cols)
	offset := 1
	for i := range fields {
		d := buf[headerSize+i*fieldDescSize:]
		f := FieldDescriptor{
			Type:     d[11],
			Length:   d[16],
			Decimals: d[17],
			Offset:   offset,
		}
		copy(f.Name[:], d[:11])
		fields[i] = f
		offset += int(f.Length)
	}
	return fields, nil
}

// fieldName returns the descriptor name up to its NUL terminator.
func fieldName(f FieldDescriptor) []byte {
	name := f.Name[:]
	if i := bytes.IndexByte(name, NUL); i >= 0 {
		name = name[:i]
	}
	return name
}

// codePageName maps the header language-driver byte to a code page name.
// Unknown bytes default to cp850; that mirrors the files this format is
// found in, but may mis-decode text written with an unlisted driver.
func codePageName(language byte) string {
	switch language {
	case 0x01:
		return "cp437"
	case 0x02:
		return "cp850"
	case 0x03:
		return "cp852"
	case 0x65:
		return "cp1252"
	default:
		return "cp850"
	}
}
