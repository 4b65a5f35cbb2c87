package export

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/RaicyAugusto/dbc2parquet/dbc"
)

// DefaultBatchSize is the number of rows materialized per record batch.
const DefaultBatchSize = 10000

// WriteParquet converts the whole table to a ZSTD-compressed Parquet file
// at path, one batch of batchSize rows at a time in increasing row order.
// batchSize <= 0 selects DefaultBatchSize.
func WriteParquet(t *dbc.Table, path string, batchSize int) error {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	schema := Schema(t)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Zstd))
	w, err := pqarrow.NewFileWriter(schema, f, props, pqarrow.DefaultWriterProps())
	if err != nil {
		f.Close()
		return fmt.Errorf("export: open parquet writer: %w", err)
	}

	for start := 0; start < t.NumRows(); start += batchSize {
		rec, err := BuildBatch(t, schema, start, batchSize)
		if err != nil {
			w.Close()
			f.Close()
			return err
		}
		err = w.Write(rec)
		rec.Release()
		if err != nil {
			w.Close()
			f.Close()
			return fmt.Errorf("export: write batch at row %d: %w", start, err)
		}
	}

	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("export: close parquet writer: %w", err)
	}
	return f.Close()
}
