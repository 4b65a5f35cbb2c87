// Command dbc2parquet converts a compressed DBC table file to Parquet.
//
// Usage:
//
//	dbc2parquet [-batch-size N] input.dbc [output.parquet]
//
// With a single argument the output path is derived by replacing the input
// extension with .parquet.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"

	"github.com/RaicyAugusto/dbc2parquet/dbc"
	"github.com/RaicyAugusto/dbc2parquet/export"
)

func outputFilename(input string) string {
	out := input
	if i := strings.LastIndexByte(out, '.'); i >= 0 {
		out = out[:i]
	}
	return out + ".parquet"
}

// waitIfInteractive keeps the window open when the binary was launched by
// double-click rather than from a shell.
func waitIfInteractive() {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Print("\nPress enter to exit...")
		fmt.Scanln()
	}
}

func main() {
	batchSize := flag.Int("batch-size", export.DefaultBatchSize, "Number of rows per Parquet record batch")
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	var input, output string
	switch flag.NArg() {
	case 1:
		input = flag.Arg(0)
		output = outputFilename(input)
	case 2:
		input = flag.Arg(0)
		output = flag.Arg(1)
		if !strings.HasSuffix(input, ".dbc") || !strings.HasSuffix(output, ".parquet") {
			fmt.Fprintf(os.Stderr, "Usage: %s [-batch-size N] input.dbc [output.parquet]\n", os.Args[0])
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [-batch-size N] input.dbc [output.parquet]\n", os.Args[0])
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "starting conversion", "input", input, "output", output)
	start := time.Now()

	table, err := dbc.LoadFile(input)
	if err != nil {
		level.Error(logger).Log("msg", "failed to load table", "input", input, "err", err)
		waitIfInteractive()
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "table decoded", "rows", table.NumRows(), "columns", table.NumCols(), "encoding", table.Encoding())

	if err := export.WriteParquet(table, output, *batchSize); err != nil {
		level.Error(logger).Log("msg", "failed to write parquet", "output", output, "err", err)
		waitIfInteractive()
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "conversion completed", "output", output, "elapsed", time.Since(start))
	waitIfInteractive()
}
