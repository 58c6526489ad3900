package sqlite

import (
	"context"
	"database/sql"
	"time"
)

type AchievementRepo struct{ *Repo }

func NewAchievementRepo(db *sql.DB) *AchievementRepo { return &AchievementRepo{NewRepo(db)} }

// Unlocked lists achievement ids in unlock order.
func (r *AchievementRepo) Unlocked(ctx context.Context) ([]string, error) {
	sqlStr, args, err := r.SQ.Select("id").From("achievements").OrderBy("unlocked_at", "id").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *AchievementRepo) Unlock(ctx context.Context, id string, at time.Time) error {
	q := r.SQ.
		Insert("achievements").
		Columns("id", "unlocked_at").
		Values(id, at.UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT(id) DO NOTHING")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}
