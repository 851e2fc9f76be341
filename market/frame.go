package market

import "fmt"

// Frame is a dense float64 matrix indexed [day][instrument]: one row per
// trading day, one column per instrument. Storage is row-major in a single
// backing slice so a full-day scan is one contiguous walk.
type Frame struct {
	days        int
	instruments int
	data        []float64
}

// NewFrame returns a zero-filled days x instruments Frame.
func NewFrame(days, instruments int) *Frame {
	if days < 0 {
		days = 0
	}
	if instruments < 0 {
		instruments = 0
	}
	return &Frame{
		days:        days,
		instruments: instruments,
		data:        make([]float64, days*instruments),
	}
}

// FrameFromRows builds a Frame from one slice per day. Every row must have
// the same length.
func FrameFromRows(rows [][]float64) (*Frame, error) {
	if len(rows) == 0 {
		return &Frame{}, nil
	}
	cols := len(rows[0])
	f := NewFrame(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("market: ragged rows: row 0 has %d columns, row %d has %d", cols, i, len(row))
		}
		copy(f.data[i*cols:(i+1)*cols], row)
	}
	return f, nil
}

func (f *Frame) Days() int        { return f.days }
func (f *Frame) Instruments() int { return f.instruments }

// At returns the value for one day and instrument column.
func (f *Frame) At(day, instrument int) float64 {
	return f.data[day*f.instruments+instrument]
}

// Set stores a value for one day and instrument column.
func (f *Frame) Set(day, instrument int, v float64) {
	f.data[day*f.instruments+instrument] = v
}

// Row returns all values for one day. The returned slice aliases the
// Frame's storage.
func (f *Frame) Row(day int) []float64 {
	return f.data[day*f.instruments : (day+1)*f.instruments]
}

// Fill sets every cell to v.
func (f *Frame) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b *Frame) bool {
	return a != nil && b != nil && a.days == b.days && a.instruments == b.instruments
}
