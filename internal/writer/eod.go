package writer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rkm/rkm-eod/internal/config"
	"github.com/rkm/rkm-eod/internal/model"
)

// Record markers.
const (
	RecordHeader  = "H"
	RecordDetail  = "D"
	RecordTrailer = "T"
)

const (
	filePrefix      = "RKMINFO-"
	fileDateLayout  = "2006-01-02"
	headerTimestamp = "20060102150405"
)

// FileName returns the EOD file name for the given run time.
func FileName(runTime time.Time) string {
	return filePrefix + runTime.Format(fileDateLayout) + ".csv"
}

// HeaderTimestamp formats the run time for the H record.
func HeaderTimestamp(runTime time.Time) string {
	return runTime.Format(headerTimestamp)
}

// EODWriter writes tools to a dated file in Dir.
type EODWriter struct {
	dir    string
	crlf   bool
	logger *slog.Logger

	create func(name string) (*os.File, error)
}

// NewEODWriter creates a new EODWriter.
func NewEODWriter(cfg config.OutputConfig, logger *slog.Logger) *EODWriter {
	if logger == nil {
		logger = slog.Default()
	}
	dir := cfg.Dir
	if dir == "" {
		dir = config.DefaultOutputDir
	}
	return &EODWriter{
		dir:    dir,
		crlf:   cfg.UseCRLF(),
		logger: logger,
		create: os.Create,
	}
}

// Write creates (or truncates) the EOD file for runTime and writes the
// header, one detail record per tool and the trailer. It returns the path.
// On any write or close error the partial file is removed so no file without
// a trailer is left behind.
func (w *EODWriter) Write(runTime time.Time, tools []model.Tool) (string, error) {
	path := filepath.Join(w.dir, FileName(runTime))

	f, err := w.create(path)
	if err != nil {
		return "", fmt.Errorf("create eod file: %w", err)
	}

	werr := WriteRecords(f, runTime, tools, w.crlf)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			w.logger.Warn("failed to remove partial eod file", "path", path, "error", rmErr)
		}
		if werr != nil {
			return "", fmt.Errorf("write eod file %s: %w", path, werr)
		}
		return "", fmt.Errorf("close eod file: %w", cerr)
	}

	w.logger.Debug("eod file written",
		"path", path,
		"rows", len(tools),
	)
	return path, nil
}

// WriteRecords writes the H/D/T records to out.
func WriteRecords(out io.Writer, runTime time.Time, tools []model.Tool, crlf bool) error {
	cw := csv.NewWriter(out)
	cw.UseCRLF = crlf

	if err := cw.Write([]string{RecordHeader, HeaderTimestamp(runTime)}); err != nil {
		return err
	}

	record := make([]string, 0, 1+len(model.ToolColumns))
	for _, t := range tools {
		record = append(record[:0], RecordDetail)
		record = append(record, t.Fields()...)
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{RecordTrailer, strconv.Itoa(len(tools))}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
