package metricx

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBPath             string
	HistoryLimit       int
	Codec              string // "msgpack" or "protobuf"
	ChallengeDuration  time.Duration
	ChallengeQuestions int
	RaceQuestions      int
}

func DefaultConfig() Config {
	return Config{
		DBPath:             "metricx.db",
		HistoryLimit:       DefaultHistoryLimit,
		Codec:              "msgpack",
		ChallengeDuration:  ChallengeDuration,
		ChallengeQuestions: ChallengeQuestions,
		RaceQuestions:      RaceQuestions,
	}
}

// LoadConfig starts from DefaultConfig and applies METRICX_* variables.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	if v := getenv("METRICX_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("METRICX_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("METRICX_HISTORY_LIMIT must be a positive integer, got %q", v)
		}
		cfg.HistoryLimit = n
	}
	if v := getenv("METRICX_CODEC"); v != "" {
		if v != "msgpack" && v != "protobuf" {
			return cfg, fmt.Errorf("METRICX_CODEC must be msgpack or protobuf, got %q", v)
		}
		cfg.Codec = v
	}
	if v := getenv("METRICX_CHALLENGE_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("METRICX_CHALLENGE_SECONDS must be a positive integer, got %q", v)
		}
		cfg.ChallengeDuration = time.Duration(n) * time.Second
	}
	return cfg, nil
}
