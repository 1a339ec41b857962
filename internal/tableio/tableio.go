// Package tableio is the file I/O wrapper around the cleaning core: it
// turns files into fully materialized row/column tables and back. The
// core itself never touches the filesystem.
package tableio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/KaramelBytes/sensorclean-cli/internal/textenc"
	"github.com/KaramelBytes/sensorclean-cli/internal/utils"
)

// ReadFile loads a delimited-text file into rows, decoding the bytes with
// the first candidate encoding that accepts them. Rows may have uneven
// lengths; the caller is expected to tolerate short rows.
func ReadFile(path string, encodings []string, delim rune) (rows [][]string, encodingUsed string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read input: %w", err)
	}
	text, used, err := textenc.Decode(data, encodings)
	if err != nil {
		return nil, "", fmt.Errorf("decode input: %w", err)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	if delim != 0 {
		r.Comma = delim
	}
	rows, err = r.ReadAll()
	if err != nil {
		return nil, "", fmt.Errorf("parse rows: %w", err)
	}
	return rows, used, nil
}

// WriteFile writes rows as UTF-8 delimited text, atomically.
func WriteFile(path string, rows [][]string, delim rune) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if delim != 0 {
		w.Comma = delim
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
