package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"metricx"
)

type HistoryRepo struct {
	*Repo
	codec metricx.RecordCodec
}

func NewHistoryRepo(db *sql.DB, codec metricx.RecordCodec) *HistoryRepo {
	return &HistoryRepo{Repo: NewRepo(db), codec: codec}
}

func (r *HistoryRepo) Append(ctx context.Context, rec metricx.ConversionRecord) error {
	payload, err := r.codec.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", rec.ID, err)
	}
	q := r.SQ.
		Insert("history").
		Columns("id", "created_at", "codec", "payload").
		Values(rec.ID, rec.Timestamp.UTC().Format(time.RFC3339Nano), r.codec.Name(), payload)
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

// List returns up to limit records, newest first. limit <= 0 means all.
func (r *HistoryRepo) List(ctx context.Context, limit int) ([]metricx.ConversionRecord, error) {
	q := r.SQ.Select("codec", "payload").From("history").OrderBy("seq DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
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

	var records []metricx.ConversionRecord
	for rows.Next() {
		var codec string
		var payload []byte
		if err := rows.Scan(&codec, &payload); err != nil {
			return nil, err
		}
		if codec != r.codec.Name() {
			return nil, fmt.Errorf("history row encoded with %s, store reads %s", codec, r.codec.Name())
		}
		rec, err := r.codec.Unmarshal(payload)
		if err != nil {
			return nil, fmt.Errorf("decode history row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Prune keeps the newest keep records.
func (r *HistoryRepo) Prune(ctx context.Context, keep int) error {
	q := r.SQ.
		Delete("history").
		Where(sq.Expr("seq NOT IN (SELECT seq FROM history ORDER BY seq DESC LIMIT ?)", keep))
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *HistoryRepo) Clear(ctx context.Context) error {
	sqlStr, args, err := r.SQ.Delete("history").ToSql()
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, sqlStr, args...)
	return err
}
