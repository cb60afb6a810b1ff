package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	ColumnDate        = "Date"
	ColumnDescription = "Description"
	ColumnAmount      = "Amount"
)

// RequiredColumns are matched by exact name in any order. Extra columns are ignored.
var RequiredColumns = []string{ColumnDate, ColumnDescription, ColumnAmount}

var errShortRow = errors.New("row has fewer fields than the header requires")

// RawRecord holds the three required fields of one data row as text.
// Err is set when the row itself could not be parsed.
type RawRecord struct {
	Line        int
	Date        string
	Description string
	Amount      string
	Err         error
}

// RecordReader yields RawRecords in file order, a bounded chunk at a time.
type RecordReader struct {
	csv       *csv.Reader
	counter   *countingReader
	chunkSize int

	dateIdx        int
	descriptionIdx int
	amountIdx      int
	width          int

	done bool
}

// NewRecordReader decodes r with enc and reads the header row. A missing
// required column fails before any data row is read.
func NewRecordReader(r io.Reader, enc Encoding, chunkSize int) (*RecordReader, error) {
	if chunkSize < 1 {
		chunkSize = 1
	}

	counter := &countingReader{r: r}
	var decoded io.Reader
	switch enc {
	case EncodingLatin1:
		decoded = transform.NewReader(counter, charmap.ISO8859_1.NewDecoder())
	default:
		decoded = transform.NewReader(counter, unicode.UTF8BOM.NewDecoder())
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, schemaError(fmt.Errorf("%w: file has no header row", ErrMissingColumns))
	}
	if err != nil {
		return nil, schemaError(fmt.Errorf("read header: %w", err))
	}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			// A UTF-8 byte order mark read through the Latin-1 fallback.
			name = strings.TrimPrefix(name, "\u00ef\u00bb\u00bf")
		}
		name = strings.TrimSpace(name)
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := positions[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, schemaError(fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", ")))
	}

	rr := &RecordReader{
		csv:            reader,
		counter:        counter,
		chunkSize:      chunkSize,
		dateIdx:        positions[ColumnDate],
		descriptionIdx: positions[ColumnDescription],
		amountIdx:      positions[ColumnAmount],
	}
	rr.width = max(rr.dateIdx, rr.descriptionIdx, rr.amountIdx) + 1
	return rr, nil
}

// ReadChunk returns up to chunkSize records. It returns io.EOF once the input
// is exhausted and no records remain. Malformed rows come back as records
// with Err set; only an I/O failure is returned as an error.
func (r *RecordReader) ReadChunk() ([]RawRecord, error) {
	if r.done {
		return nil, io.EOF
	}

	chunk := make([]RawRecord, 0, r.chunkSize)
	for len(chunk) < r.chunkSize {
		fields, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			r.done = true
			break
		}

		var parseErr *csv.ParseError
		switch {
		case errors.As(err, &parseErr):
			chunk = append(chunk, RawRecord{Line: parseErr.StartLine, Err: err})
			continue
		case err != nil:
			return nil, encodingError(fmt.Errorf("read row: %w", err))
		}

		line, _ := r.csv.FieldPos(0)
		if len(fields) < r.width {
			chunk = append(chunk, RawRecord{Line: line, Err: errShortRow})
			continue
		}

		chunk = append(chunk, RawRecord{
			Line:        line,
			Date:        fields[r.dateIdx],
			Description: fields[r.descriptionIdx],
			Amount:      fields[r.amountIdx],
		})
	}

	if len(chunk) == 0 {
		return nil, io.EOF
	}
	return chunk, nil
}

// BytesRead is the number of raw input bytes consumed so far.
func (r *RecordReader) BytesRead() int64 {
	return r.counter.n.Load()
}

type countingReader struct {
	r io.Reader
	n atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}
