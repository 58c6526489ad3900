package metricx

import (
	"context"
	"time"
)

// HistoryStore persists conversion records. List returns newest first.
type HistoryStore interface {
	Append(ctx context.Context, rec ConversionRecord) error
	List(ctx context.Context, limit int) ([]ConversionRecord, error)
	Prune(ctx context.Context, keep int) error
	Clear(ctx context.Context) error
}

type AchievementStore interface {
	Unlocked(ctx context.Context) ([]string, error)
	Unlock(ctx context.Context, id string, at time.Time) error
}

// SettingsStore returns ErrSettingNotFound for keys never set.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type Score struct {
	Score int
	Date  time.Time
}

// ScoreStore keeps the challenge leaderboard, best score first.
type ScoreStore interface {
	AddScore(ctx context.Context, s Score) error
	TopScores(ctx context.Context, n int) ([]Score, error)
}

type RecordCodec interface {
	Name() string
	Marshal(rec ConversionRecord) ([]byte, error)
	Unmarshal(data []byte) (ConversionRecord, error)
}
