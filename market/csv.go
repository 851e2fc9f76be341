package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadFrameCSV loads a Frame from a CSV file: one row per day, one column
// per instrument. A header row is skipped when its first cell does not
// parse as a number. Empty cells parse as NaN.
func ReadFrameCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read frame %s: %w", path, err)
	}
	defer f.Close()

	fr, err := ReadFrame(f)
	if err != nil {
		return nil, fmt.Errorf("read frame %s: %w", path, err)
	}
	return fr, nil
}

// ReadFrame parses frame data in CSV form from r.
func ReadFrame(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var rows [][]float64
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(rec) == 0 {
			continue
		}
		if line == 1 && !numeric(rec[0]) {
			// header
			continue
		}
		row := make([]float64, len(rec))
		for i, cell := range rec {
			row[i], err = parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", line, i+1, err)
			}
		}
		rows = append(rows, row)
	}
	return FrameFromRows(rows)
}

// WriteSeriesCSV writes an equity series as a two-column CSV (day, equity).
func WriteSeriesCSV(path string, series []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write series %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"day", "equity"}); err != nil {
		f.Close()
		return err
	}
	for day, v := range series {
		row := []string{strconv.Itoa(day), strconv.FormatFloat(v, 'f', 6, 64)}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q: %w", s, err)
	}
	return v, nil
}

func numeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}
