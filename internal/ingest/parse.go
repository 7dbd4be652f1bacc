package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"glpi-insights/internal/ticket"

	"github.com/klauspost/compress/gzip"
)

const (
	delimiter = ';'
	utf8BOM   = "\ufeff"
)

var gzipMagic = []byte{0x1f, 0x8b}

var (
	// ErrEmptyHeader is returned when the input has no header row.
	ErrEmptyHeader = errors.New("missing header row")
	// ErrInvalidEncoding is returned when the input is not UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// Parse reads a semicolon-delimited GLPI export into a snapshot.
// Gzip input is decompressed transparently. Non-UTF-8 input fails the whole load;
// individual malformed cells never do.
func Parse(data []byte, source, key string, loadedAt time.Time) (*ticket.Snapshot, error) {
	raw, err := decompress(data)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, ErrInvalidEncoding
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrEmptyHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header = normalizeHeader(header)
	if len(header) == 0 || (len(header) == 1 && header[0] == "") {
		return nil, ErrEmptyHeader
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}

	tickets, cols := ticket.FromRecords(header, rows)
	return &ticket.Snapshot{
		Tickets:  tickets,
		Columns:  cols,
		Source:   source,
		Key:      key,
		LoadedAt: loadedAt,
	}, nil
}

func decompress(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return out, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}
