package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"metricx"
)

type ScoreRepo struct{ *Repo }

func NewScoreRepo(db *sql.DB) *ScoreRepo { return &ScoreRepo{NewRepo(db)} }

// AddScore inserts s and trims the table to metricx.MaxHighScores rows.
func (r *ScoreRepo) AddScore(ctx context.Context, s metricx.Score) error {
	sqlStr, args, err := r.SQ.
		Insert("highscores").
		Columns("score", "date").
		Values(s.Score, s.Date.UTC().Format(time.RFC3339Nano)).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.DB.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}
	sqlStr, args, err = r.SQ.
		Delete("highscores").
		Where(sq.Expr("id NOT IN (SELECT id FROM highscores ORDER BY score DESC, id ASC LIMIT ?)", metricx.MaxHighScores)).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

// TopScores returns the best n scores; n <= 0 returns all kept scores.
func (r *ScoreRepo) TopScores(ctx context.Context, n int) ([]metricx.Score, error) {
	q := r.SQ.Select("score", "date").From("highscores").OrderBy("score DESC", "id ASC")
	if n > 0 {
		q = q.Limit(uint64(n))
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var scores []metricx.Score
	for rows.Next() {
		var s metricx.Score
		var date string
		if err := rows.Scan(&s.Score, &date); err != nil {
			return nil, err
		}
		s.Date, _ = time.Parse(time.RFC3339Nano, date)
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
