package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupportedEncoding indicates a CSV charset that cannot be decoded.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// CSVOptions configures CSV reading.
type CSVOptions struct {
	// Encoding is the source charset: utf-8 (default), windows-1252 or iso-8859-1.
	Encoding string
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Decoder returns the decoder for a charset name.
func Decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "iso-8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

// ReadCSV decodes r and returns its records as a grid.
// Ragged rows are accepted; CSV carries no formatting so both views of
// the grid are identical.
func ReadCSV(r io.Reader, opts CSVOptions) (*Grid, error) {
	dec, err := Decoder(opts.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(transform.NewReader(r, dec))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return &Grid{Formatted: records, Raw: records}, nil
}
