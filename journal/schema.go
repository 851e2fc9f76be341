package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	initial_cash REAL NOT NULL,
	days INTEGER NOT NULL,
	instruments INTEGER NOT NULL,
	final_equity REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS fills (
	run_id TEXT NOT NULL,
	day INTEGER NOT NULL,
	instrument INTEGER NOT NULL,
	side TEXT NOT NULL,
	shares REAL NOT NULL,
	price REAL NOT NULL,
	notional REAL NOT NULL,
	fee REAL NOT NULL,
	cash_after REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS equity (
	run_id TEXT NOT NULL,
	day INTEGER NOT NULL,
	equity REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fills_run ON fills(run_id, day);
CREATE INDEX IF NOT EXISTS idx_equity_run ON equity(run_id, day);
`
