package postgres

import (
	"context"
	"fmt"
)

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 001: ACTIVITY EVENTS
// ══════════════════════════════════════════════════════════════════════════════

// A single normalized event table parameterized by activity_key replaces
// one physical table per activity. Adding an activity to the catalog
// requires no schema change.
const migration001ActivityEvents = `
CREATE TABLE IF NOT EXISTS activity_events (
    id UUID PRIMARY KEY,
    activity_key VARCHAR(50) NOT NULL,
    user_id BIGINT NOT NULL,
    username TEXT NOT NULL DEFAULT '',
    count BIGINT NOT NULL,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT positive_count CHECK (count > 0)
);

-- Covers the today/week/lifetime aggregation queries per user/activity.
CREATE INDEX IF NOT EXISTS idx_activity_events_key_user_time
    ON activity_events(activity_key, user_id, created_at);

CREATE INDEX IF NOT EXISTS idx_activity_events_key_time
    ON activity_events(activity_key, created_at DESC);
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 002: ACHIEVEMENTS
// ══════════════════════════════════════════════════════════════════════════════

// The unique constraint is the sole correctness mechanism preventing
// duplicate awards under concurrent submissions.
const migration002Achievements = `
CREATE TABLE IF NOT EXISTS achievements (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL,
    username TEXT NOT NULL DEFAULT '',
    activity_key VARCHAR(50) NOT NULL,
    milestone BIGINT NOT NULL,
    awarded_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT uniq_achievement UNIQUE (user_id, activity_key, milestone)
);

CREATE INDEX IF NOT EXISTS idx_achievements_user
    ON achievements(user_id, activity_key);
`

// migrations lists all migrations in execution order.
var migrations = []struct {
	name string
	sql  string
}{
	{"001_activity_events", migration001ActivityEvents},
	{"002_achievements", migration002Achievements},
}

// RunMigrations applies all migrations. Every statement is idempotent
// (IF NOT EXISTS), so re-running on startup is safe.
func RunMigrations(ctx context.Context, conn *Connection) error {
	for _, m := range migrations {
		if _, err := conn.Pool().Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMigrationFailed, m.name, err)
		}
	}
	return nil
}
