package metricx

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"
)

const (
	AchievementFirstConversion = "first_conversion"
	AchievementGamePlayer      = "game_player"
	AchievementQuizTaker       = "quiz_taker"
	AchievementPerfectScore    = "perfect_score"
	AchievementVoiceUser       = "voice_user"
	AchievementThemeChanger    = "theme_changer"
	AchievementSpeedDemon      = "speed_demon"
)

type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

var Achievements = []Achievement{
	{ID: AchievementFirstConversion, Name: "First Steps", Description: "Complete your first conversion", Icon: "🎯"},
	{ID: AchievementGamePlayer, Name: "Game Master", Description: "Play the conversion game", Icon: "🎮"},
	{ID: AchievementQuizTaker, Name: "Knowledge Seeker", Description: "Take the unit quiz", Icon: "🧠"},
	{ID: AchievementPerfectScore, Name: "Perfectionist", Description: "Get 100% on the quiz", Icon: "🌟"},
	{ID: AchievementVoiceUser, Name: "Voice Commander", Description: "Use voice commands", Icon: "🎤"},
	{ID: AchievementThemeChanger, Name: "Style Master", Description: "Change the theme", Icon: "🎨"},
	{ID: AchievementSpeedDemon, Name: "Speed Demon", Description: "Complete 10 conversions in 1 minute", Icon: "⚡"},
}

// SpeedDemonWindow is how fast a full history has to fill up.
var SpeedDemonWindow = time.Minute

func LookupAchievement(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

type AchievementStatus struct {
	Achievement
	Unlocked bool
}

type Progress struct {
	Unlocked int
	Total    int
}

func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return int(math.Round(float64(p.Unlocked) / float64(p.Total) * 100))
}

type Tracker struct {
	mutex  sync.Mutex
	store  AchievementStore
	now    func() time.Time
	logger *slog.Logger
}

func NewTracker(store AchievementStore, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{store: store, now: time.Now, logger: logger}
}

// Unlock reports whether id was newly unlocked.
func (t *Tracker) Unlock(ctx context.Context, id string) (bool, error) {
	a, ok := LookupAchievement(id)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownAchievement, id)
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	unlocked, err := t.store.Unlocked(ctx)
	if err != nil {
		return false, fmt.Errorf("read achievements: %w", err)
	}
	if contains(unlocked, id) {
		return false, nil
	}
	if err := t.store.Unlock(ctx, id, t.now()); err != nil {
		return false, fmt.Errorf("unlock %s: %w", id, err)
	}
	t.logger.Info("achievement unlocked", "id", a.ID, "name", a.Name)
	return true, nil
}

func (t *Tracker) Status(ctx context.Context) ([]AchievementStatus, error) {
	unlocked, err := t.store.Unlocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("read achievements: %w", err)
	}
	statuses := make([]AchievementStatus, 0, len(Achievements))
	for _, a := range Achievements {
		statuses = append(statuses, AchievementStatus{Achievement: a, Unlocked: contains(unlocked, a.ID)})
	}
	return statuses, nil
}

func (t *Tracker) Progress(ctx context.Context) (Progress, error) {
	statuses, err := t.Status(ctx)
	if err != nil {
		return Progress{}, err
	}
	p := Progress{Total: len(statuses)}
	for _, s := range statuses {
		if s.Unlocked {
			p.Unlocked++
		}
	}
	return p, nil
}

// HistoryHook unlocks first_conversion on every record and speed_demon once
// a full history was filled within SpeedDemonWindow.
func (t *Tracker) HistoryHook() HookFunc {
	return func(ctx context.Context, rec ConversionRecord, h *History) error {
		if _, err := t.Unlock(ctx, AchievementFirstConversion); err != nil {
			return err
		}
		records := h.Records()
		if len(records) < h.Limit() || len(records) == 0 {
			return nil
		}
		newest, oldest := records[0].Timestamp, records[len(records)-1].Timestamp
		if newest.Sub(oldest) <= SpeedDemonWindow {
			if _, err := t.Unlock(ctx, AchievementSpeedDemon); err != nil {
				return err
			}
		}
		return nil
	}
}

// unlock is used by widgets that may run without a tracker.
func (t *Tracker) unlock(ctx context.Context, id string) {
	if t == nil {
		return
	}
	if _, err := t.Unlock(ctx, id); err != nil {
		t.logger.Warn("unlock achievement", "id", id, "error", err)
	}
}
