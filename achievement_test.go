package metricx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"metricx"
)

func unlocked(t *testing.T, tracker *metricx.Tracker, id string) bool {
	t.Helper()
	statuses, err := tracker.Status(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range statuses {
		if s.ID == id {
			return s.Unlocked
		}
	}
	t.Fatalf("achievement %s not listed", id)
	return false
}

func TestTrackerUnlock(t *testing.T) {
	ctx := context.Background()
	tracker := metricx.NewTracker(metricx.NewMemoryStore(), quietLogger())

	if _, err := tracker.Unlock(ctx, "moon_landing"); !errors.Is(err, metricx.ErrUnknownAchievement) {
		t.Errorf("unknown id: got %v", err)
	}
	first, err := tracker.Unlock(ctx, metricx.AchievementVoiceUser)
	if err != nil || !first {
		t.Fatalf("first unlock = %v, %v", first, err)
	}
	again, err := tracker.Unlock(ctx, metricx.AchievementVoiceUser)
	if err != nil || again {
		t.Fatalf("second unlock = %v, %v", again, err)
	}

	p, err := tracker.Progress(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if p.Unlocked != 1 || p.Total != 7 || p.Percent() != 14 {
		t.Errorf("progress = %+v (%d%%)", p, p.Percent())
	}
}

func TestHistoryHookFirstConversion(t *testing.T) {
	ctx := context.Background()
	tracker := metricx.NewTracker(metricx.NewMemoryStore(), quietLogger())
	h := metricx.NewHistory()
	h.AddHook(tracker.HistoryHook())

	addConversions(t, ctx, h, metricx.NewConverter(nil), 1)
	if !unlocked(t, tracker, metricx.AchievementFirstConversion) {
		t.Errorf("first_conversion not unlocked")
	}
	if unlocked(t, tracker, metricx.AchievementSpeedDemon) {
		t.Errorf("speed_demon unlocked after one conversion")
	}
}

func TestHistoryHookSpeedDemon(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		step time.Duration
		want bool
	}{
		{"ten within a minute", time.Second, true},
		{"ten over ninety seconds", 10 * time.Second, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			tracker := metricx.NewTracker(metricx.NewMemoryStore(), quietLogger())
			h := metricx.NewHistory()
			h.AddHook(tracker.HistoryHook())
			conv := metricx.NewConverter(nil, metricx.WithClock(steppingClock(start, tc.step)))

			addConversions(t, ctx, h, conv, 9)
			if unlocked(t, tracker, metricx.AchievementSpeedDemon) {
				t.Fatalf("unlocked before the history was full")
			}
			addConversions(t, ctx, h, conv, 1)
			if got := unlocked(t, tracker, metricx.AchievementSpeedDemon); got != tc.want {
				t.Errorf("speed_demon = %v, want %v", got, tc.want)
			}
		})
	}
}
