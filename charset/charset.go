// Package charset converts legacy 8-bit code page text to UTF-8 behind a
// single Converter contract, so callers never care which backend does the
// work.
package charset

import (
	"strings"

	"github.com/axgle/mahonia"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Converter decodes bytes in a source encoding to UTF-8.
//
// Converters are not safe for concurrent use and the slice returned by
// Decode may be reused by the next call; copy it if it must survive.
type Converter interface {
	Name() string
	Decode(src []byte) ([]byte, error)
}

// codePages are the encodings served by the x/text backend.
var codePages = map[string]*charmap.Charmap{
	"cp437":       charmap.CodePage437,
	"cp850":       charmap.CodePage850,
	"cp852":       charmap.CodePage852,
	"cp1252":      charmap.Windows1252,
	"iso-8859-1":  charmap.ISO8859_1,
	"iso-8859-15": charmap.ISO8859_15,
}

// New returns a converter for the named encoding. Known code pages use the
// x/text charmap tables; anything else mahonia recognizes uses mahonia; an
// unknown name falls back to passing bytes through unchanged.
func New(name string) Converter {
	key := strings.ToLower(name)
	if cm, ok := codePages[key]; ok {
		return &charmapConverter{name: key, dec: cm.NewDecoder()}
	}
	if dec := mahonia.NewDecoder(key); dec != nil {
		return &mahoniaConverter{name: key, dec: dec}
	}
	return rawConverter{name: key}
}

type charmapConverter struct {
	name    string
	dec     *encoding.Decoder
	scratch []byte
}

func (c *charmapConverter) Name() string { return c.name }

func (c *charmapConverter) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	// Worst case one source byte expands to 4 bytes of UTF-8.
	if need := len(src) * 4; cap(c.scratch) < need {
		c.scratch = make([]byte, need)
	}
	dst := c.scratch[:cap(c.scratch)]
	c.dec.Reset()
	nDst, _, err := c.dec.Transform(dst, src, true)
	if err != nil {
		return nil, err
	}
	return dst[:nDst], nil
}

type mahoniaConverter struct {
	name string
	dec  mahonia.Decoder
}

func (c *mahoniaConverter) Name() string { return c.name }

func (c *mahoniaConverter) Decode(src []byte) ([]byte, error) {
	return []byte(c.dec.ConvertString(string(src))), nil
}

// rawConverter passes bytes through untouched for encodings no backend
// knows. ASCII content still comes out right.
type rawConverter struct {
	name string
}

func (c rawConverter) Name() string { return c.name }

func (c rawConverter) Decode(src []byte) ([]byte, error) {
	return src, nil
}
