package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordFill(r Fill) error {
	_, err := j.db.Exec(`
		INSERT INTO fills
		(run_id, day, instrument, side, shares, price, notional, fee, cash_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Day, r.Instrument, r.Side,
		r.Shares, r.Price, r.Notional, r.Fee, r.CashAfter,
	)
	return err
}

func (j *SQLite) RecordEquity(e EquityPoint) error {
	_, err := j.db.Exec(`
		INSERT INTO equity (run_id, day, equity)
		VALUES (?, ?, ?)`,
		e.RunID, e.Day, e.Equity,
	)
	return err
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, initial_cash, days, instruments, final_equity)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.InitialCash, r.Days, r.Instruments, r.FinalEquity,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
