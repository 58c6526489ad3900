package sqlite

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"metricx"
)

// Repo provides a base for Squirrel-based repositories.
type Repo struct {
	DB *sql.DB
	SQ sq.StatementBuilderType
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db, SQ: sq.StatementBuilder}
}

// Store bundles every repository so one value satisfies all metricx ports.
type Store struct {
	*HistoryRepo
	*AchievementRepo
	*SettingsRepo
	*ScoreRepo
	db *sql.DB
}

var (
	_ metricx.HistoryStore     = (*Store)(nil)
	_ metricx.AchievementStore = (*Store)(nil)
	_ metricx.SettingsStore    = (*Store)(nil)
	_ metricx.ScoreStore       = (*Store)(nil)
)

// Open initialises the database at dbPath. History payloads are encoded
// with codec.
func Open(dbPath string, codec metricx.RecordCodec) (*Store, error) {
	db, err := Init(dbPath)
	if err != nil {
		return nil, err
	}
	return NewStore(db, codec), nil
}

func NewStore(db *sql.DB, codec metricx.RecordCodec) *Store {
	return &Store{
		HistoryRepo:     NewHistoryRepo(db, codec),
		AchievementRepo: NewAchievementRepo(db),
		SettingsRepo:    NewSettingsRepo(db),
		ScoreRepo:       NewScoreRepo(db),
		db:              db,
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}
