package dbc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/JoshVarga/blast"
)

// chunkSize bounds how much the decompressor pulls from the source per call.
const chunkSize = 4096

// chunkSource is the pull side of the decompression adapter. It never hands
// the decompressor more than chunkSize bytes at a time, so the compressed
// payload is streamed on demand rather than slurped up front. The buffer is
// owned by the caller's read, not shared package state.
type chunkSource struct {
	r io.Reader
}

func (s *chunkSource) Read(p []byte) (int, error) {
	if len(p) > chunkSize {
		p = p[:chunkSize]
	}
	return s.r.Read(p)
}

// decompress drives the block decompressor over r until exhaustion and
// returns the accumulated output. Any backend status other than success
// aborts the whole load.
func decompress(r io.Reader) ([]byte, error) {
	br, err := blast.NewReader(&chunkSource{r: r})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}

	var sink bytes.Buffer
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(&sink, br, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	return sink.Bytes(), nil
}
