package postgres

import (
	"context"
	"fmt"

	"github.com/KapustinMaxim/beerbot/internal/domain/activity"
)

// AchievementRepo implements activity.AchievementRepo using PostgreSQL.
type AchievementRepo struct {
	conn *Connection
}

// NewAchievementRepo creates a new AchievementRepo.
func NewAchievementRepo(conn *Connection) *AchievementRepo {
	return &AchievementRepo{conn: conn}
}

// InsertIfAbsent inserts the achievement unless the (user, activity,
// milestone) triple already exists. ON CONFLICT DO NOTHING makes the
// existence check and the insert one atomic statement, so concurrent
// crossings of the same threshold produce exactly one row. A duplicate is
// an expected outcome, not an error.
func (r *AchievementRepo) InsertIfAbsent(ctx context.Context, a activity.Achievement) (bool, error) {
	tag, err := r.conn.Pool().Exec(ctx, `
		INSERT INTO achievements (user_id, username, activity_key, milestone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT uniq_achievement DO NOTHING
	`, int64(a.UserID), a.Username, a.ActivityKey, a.Milestone)
	if err != nil {
		return false, fmt.Errorf("%w: insert achievement: %v", activity.ErrStorage, err)
	}

	return tag.RowsAffected() == 1, nil
}
