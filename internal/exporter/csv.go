package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
)

// StreamWriter writes delimited rows to a single export file. The file is
// truncated on open and written incrementally, so an export aborted
// mid-way leaves a partial file behind.
type StreamWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewStreamWriter creates the export file at path and writes the header
// row. Output is plain UTF-8 without a byte order mark.
func NewStreamWriter(path string, header []string) (*StreamWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create export file: %w", err)
	}

	writer := csv.NewWriter(file)

	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			file.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	return &StreamWriter{
		file:   file,
		writer: writer,
	}, nil
}

// WriteRecord writes a single row.
func (s *StreamWriter) WriteRecord(record []string) error {
	return s.writer.Write(record)
}

// Close flushes buffered rows and closes the file.
func (s *StreamWriter) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
