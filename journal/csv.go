package journal

import (
	"encoding/csv"
	"os"
	"strconv"
)

type CSVJournal struct {
	fills  *csv.Writer
	equity *csv.Writer
	ff, ef *os.File
}

func NewCSV(fillsPath, equityPath string) (*CSVJournal, error) {
	ff, err := os.Create(fillsPath)
	if err != nil {
		return nil, err
	}
	ef, err := os.Create(equityPath)
	if err != nil {
		ff.Close()
		return nil, err
	}

	fw := csv.NewWriter(ff)
	ew := csv.NewWriter(ef)

	if err := fw.Write([]string{"run_id", "day", "instrument", "side", "shares", "price", "notional", "fee", "cash_after"}); err != nil {
		return nil, err
	}
	if err := ew.Write([]string{"run_id", "day", "equity"}); err != nil {
		return nil, err
	}

	fw.Flush()
	if err := fw.Error(); err != nil {
		return nil, err
	}
	ew.Flush()
	if err := ew.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{fw, ew, ff, ef}, nil
}

func (j *CSVJournal) RecordFill(r Fill) error {
	err := j.fills.Write([]string{
		r.RunID,
		strconv.Itoa(r.Day),
		strconv.Itoa(r.Instrument),
		r.Side,
		f(r.Shares),
		f(r.Price),
		f(r.Notional),
		f(r.Fee),
		f(r.CashAfter),
	})
	if err != nil {
		return err
	}
	j.fills.Flush()
	return j.fills.Error()
}

func (j *CSVJournal) RecordEquity(e EquityPoint) error {
	err := j.equity.Write([]string{
		e.RunID,
		strconv.Itoa(e.Day),
		f(e.Equity),
	})
	if err != nil {
		return err
	}
	j.equity.Flush()
	return j.equity.Error()
}

func (j *CSVJournal) Close() error {
	j.fills.Flush()
	if err := j.fills.Error(); err != nil {
		return err
	}
	j.equity.Flush()
	if err := j.equity.Error(); err != nil {
		return err
	}

	if err := j.ff.Close(); err != nil {
		return err
	}
	return j.ef.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
