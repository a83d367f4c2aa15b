package app

import "context"

// schemaSQL is idempotent so it can run on every startup.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL UNIQUE,
    password   TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id          UUID PRIMARY KEY,
    user_id     UUID NOT NULL REFERENCES users (id),
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    priority    TEXT NOT NULL,
    category    TEXT NOT NULL,
    status      TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_created
    ON tasks (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS routines (
    id          UUID PRIMARY KEY,
    user_id     UUID NOT NULL REFERENCES users (id),
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    week_day    INT NOT NULL CHECK (week_day BETWEEN 0 AND 6),
    time        TEXT NOT NULL DEFAULT '',
    category    TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id          UUID PRIMARY KEY,
    user_id     UUID NOT NULL REFERENCES users (id),
    type        TEXT NOT NULL CHECK (type IN ('income', 'expense')),
    description TEXT NOT NULL,
    amount      NUMERIC(12, 2) NOT NULL CHECK (amount > 0),
    category    TEXT NOT NULL,
    date        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_user_date
    ON transactions (user_id, date DESC);

CREATE TABLE IF NOT EXISTS pomodoro_days (
    id             UUID PRIMARY KEY,
    user_id        UUID NOT NULL REFERENCES users (id),
    date           TEXT NOT NULL,
    count          INT NOT NULL,
    current_streak INT NOT NULL,
    last_updated   TIMESTAMPTZ NOT NULL,
    UNIQUE (user_id, date)
);
`

func MustCreateSchema() {
	_, err := globalPostgresPool.Exec(context.Background(), schemaSQL)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create schema")
		panic(err)
	}
	globalLogger.Info().Msg("ensured database schema")
}
