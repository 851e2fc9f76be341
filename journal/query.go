package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, created, initial_cash, days, instruments, final_equity
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.InitialCash,
		&rec.Days,
		&rec.Instruments,
		&rec.FinalEquity,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRuns returns all recorded runs, oldest first.
func (j *SQLite) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, created, initial_cash, days, instruments, final_equity
		FROM runs
		ORDER BY created ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(
			&rec.RunID,
			&rec.Created,
			&rec.InitialCash,
			&rec.Days,
			&rec.Instruments,
			&rec.FinalEquity,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFillsByRun returns a run's fills in execution order.
func (j *SQLite) ListFillsByRun(runID string) ([]Fill, error) {
	rows, err := j.db.Query(`
		SELECT run_id, day, instrument, side, shares, price, notional, fee, cash_after
		FROM fills
		WHERE run_id = ?
		ORDER BY day ASC, instrument ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Fill
	for rows.Next() {
		var rec Fill
		if err := rows.Scan(
			&rec.RunID,
			&rec.Day,
			&rec.Instrument,
			&rec.Side,
			&rec.Shares,
			&rec.Price,
			&rec.Notional,
			&rec.Fee,
			&rec.CashAfter,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEquityByRun returns a run's equity series in day order.
func (j *SQLite) ListEquityByRun(runID string) ([]EquityPoint, error) {
	rows, err := j.db.Query(`
		SELECT run_id, day, equity
		FROM equity
		WHERE run_id = ?
		ORDER BY day ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EquityPoint
	for rows.Next() {
		var rec EquityPoint
		if err := rows.Scan(&rec.RunID, &rec.Day, &rec.Equity); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
