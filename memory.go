package metricx

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps every port in process memory. It stands in for the
// browser's local storage when no database is configured.
type MemoryStore struct {
	mutex        sync.Mutex
	records      []ConversionRecord // newest first
	achievements []string
	settings     map[string]string
	scores       []Score
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{settings: make(map[string]string)}
}

func (m *MemoryStore) Append(ctx context.Context, rec ConversionRecord) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.records = append([]ConversionRecord{rec}, m.records...)
	return nil
}

func (m *MemoryStore) List(ctx context.Context, limit int) ([]ConversionRecord, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	n := len(m.records)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]ConversionRecord(nil), m.records[:n]...), nil
}

func (m *MemoryStore) Prune(ctx context.Context, keep int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if keep >= 0 && len(m.records) > keep {
		m.records = m.records[:keep]
	}
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.records = nil
	return nil
}

func (m *MemoryStore) Unlocked(ctx context.Context) ([]string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return append([]string(nil), m.achievements...), nil
}

func (m *MemoryStore) Unlock(ctx context.Context, id string, at time.Time) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if !contains(m.achievements, id) {
		m.achievements = append(m.achievements, id)
	}
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	v, ok := m.settings[key]
	if !ok {
		return "", ErrSettingNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.settings[key] = value
	return nil
}

func (m *MemoryStore) AddScore(ctx context.Context, s Score) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.scores = append(m.scores, s)
	sort.SliceStable(m.scores, func(i, j int) bool {
		return m.scores[i].Score > m.scores[j].Score
	})
	if len(m.scores) > MaxHighScores {
		m.scores = m.scores[:MaxHighScores]
	}
	return nil
}

func (m *MemoryStore) TopScores(ctx context.Context, n int) ([]Score, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if n <= 0 || n > len(m.scores) {
		n = len(m.scores)
	}
	return append([]Score(nil), m.scores[:n]...), nil
}

func contains(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}
