package metricx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var DefaultHistoryLimit = 10

type HookFunc func(ctx context.Context, rec ConversionRecord, h *History) error

// History is the recent-conversions log: newest first, at most limit records.
type History struct {
	mutex   sync.Mutex
	records []ConversionRecord
	limit   int
	store   HistoryStore
	hooks   []HookFunc
	logs    []string
	logger  *slog.Logger
}

type HistoryOption func(*History)

func WithHistoryStore(store HistoryStore) HistoryOption {
	return func(h *History) { h.store = store }
}

func WithHistoryLimit(limit int) HistoryOption {
	return func(h *History) {
		if limit > 0 {
			h.limit = limit
		}
	}
}

func WithHistoryLogger(logger *slog.Logger) HistoryOption {
	return func(h *History) { h.logger = logger }
}

func NewHistory(opts ...HistoryOption) *History {
	h := &History{
		limit:  DefaultHistoryLimit,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *History) AddHook(hook HookFunc) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Load replaces the in-memory log with what the store holds.
func (h *History) Load(ctx context.Context) error {
	if h.store == nil {
		return nil
	}
	records, err := h.store.List(ctx, h.limit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.records = records
	return nil
}

// Add puts rec at the front and evicts the oldest records beyond the limit.
// A record the store rejects is not added.
func (h *History) Add(ctx context.Context, rec ConversionRecord) error {
	if h.store != nil {
		if err := h.store.Append(ctx, rec); err != nil {
			return fmt.Errorf("persist conversion %s: %w", rec.ID, err)
		}
	}

	h.mutex.Lock()
	h.records = append([]ConversionRecord{rec}, h.records...)
	if len(h.records) > h.limit {
		h.records = h.records[:h.limit]
	}
	h.logs = append(h.logs, "Conversion "+rec.ID+" added")
	hooks := append([]HookFunc(nil), h.hooks...)
	h.mutex.Unlock()

	var pruneErr error
	if h.store != nil {
		if err := h.store.Prune(ctx, h.limit); err != nil {
			pruneErr = fmt.Errorf("prune history: %w", err)
		}
	}
	h.runHooks(ctx, rec, hooks)
	return pruneErr
}

// Record adds the conversion unless its input was zero; the form shows
// zero results without logging them.
func (h *History) Record(ctx context.Context, conv Conversion) (bool, error) {
	if conv.IsZero() {
		return false, nil
	}
	if err := h.Add(ctx, conv.Record); err != nil {
		return false, err
	}
	return true, nil
}

func (h *History) runHooks(ctx context.Context, rec ConversionRecord, hooks []HookFunc) {
	for _, hook := range hooks {
		if err := hook(ctx, rec, h); err != nil {
			h.logger.Warn("history hook failed", "record", rec.ID, "error", err)
		}
	}
}

func (h *History) Clear(ctx context.Context) error {
	h.mutex.Lock()
	h.records = nil
	h.logs = append(h.logs, "History cleared")
	h.mutex.Unlock()
	if h.store != nil {
		if err := h.store.Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
	}
	return nil
}

// Restore replaces the log with recs (newest first) without running hooks.
func (h *History) Restore(ctx context.Context, recs []ConversionRecord) error {
	if len(recs) > h.limit {
		recs = recs[:h.limit]
	}
	h.mutex.Lock()
	h.records = append([]ConversionRecord(nil), recs...)
	h.logs = append(h.logs, fmt.Sprintf("History restored with %d conversions", len(recs)))
	h.mutex.Unlock()

	if h.store == nil {
		return nil
	}
	if err := h.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	for i := len(recs) - 1; i >= 0; i-- {
		if err := h.store.Append(ctx, recs[i]); err != nil {
			return fmt.Errorf("persist conversion %s: %w", recs[i].ID, err)
		}
	}
	return nil
}

func (h *History) Records() []ConversionRecord {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return append([]ConversionRecord(nil), h.records...)
}

func (h *History) Latest() (ConversionRecord, bool) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if len(h.records) == 0 {
		return ConversionRecord{}, false
	}
	return h.records[0], true
}

func (h *History) Len() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.records)
}

func (h *History) Limit() int {
	return h.limit
}

func (h *History) Logs() []string {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return append([]string(nil), h.logs...) // return a copy
}
