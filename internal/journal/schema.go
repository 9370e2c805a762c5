package journal

const schema = `
-- Every solver execution, append-only
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    year INTEGER NOT NULL,
    day INTEGER NOT NULL CHECK(day >= 1 AND day <= 25),
    part INTEGER NOT NULL CHECK(part IN (1, 2)),
    answer TEXT NOT NULL,
    duration_us INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_puzzle ON runs(year, day, part);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

-- Latest answer per puzzle part
CREATE TABLE IF NOT EXISTS answers (
    year INTEGER NOT NULL,
    day INTEGER NOT NULL CHECK(day >= 1 AND day <= 25),
    part INTEGER NOT NULL CHECK(part IN (1, 2)),
    answer TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (year, day, part)
);
`
