package metricx_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"metricx"
)

func fixedQuestions(n int) []metricx.ChallengeQuestion {
	qs := make([]metricx.ChallengeQuestion, n)
	for i := range qs {
		qs[i] = metricx.ChallengeQuestion{
			Value:   5,
			From:    "meter",
			To:      "foot",
			Text:    "Convert 5 meters to foots",
			Options: []string{"16.404 foots", "19.685 foots", "13.123 foots", "24.606 foots"},
			Correct: 0,
			Answer:  decimal.RequireFromString("16.404"),
		}
	}
	return qs
}

func TestGenerateQuestions(t *testing.T) {
	catalog := metricx.DefaultCatalog()
	questions, err := metricx.GenerateQuestions(rand.New(rand.NewSource(7)), catalog, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 10 {
		t.Fatalf("got %d questions", len(questions))
	}
	for i, q := range questions {
		if q.Value < 1 || q.Value > 100 {
			t.Errorf("question %d: value %d out of range", i, q.Value)
		}
		if !strings.HasPrefix(q.Text, "Convert ") {
			t.Errorf("question %d: text %q", i, q.Text)
		}
		if len(q.Options) != 4 || q.Correct < 0 || q.Correct >= 4 {
			t.Fatalf("question %d: options %v correct %d", i, q.Options, q.Correct)
		}
		from, _, _ := catalog.Lookup(q.From)
		to, _, _ := catalog.Lookup(q.To)
		want := decimal.NewFromFloat(metricx.Convert(float64(q.Value), from, to)).Round(3)
		if !q.Answer.Equal(want) {
			t.Errorf("question %d: answer %s, want %s", i, q.Answer, want)
		}
		if !strings.HasPrefix(q.Options[q.Correct], want.StringFixed(3)+" ") {
			t.Errorf("question %d: correct option %q does not show %s", i, q.Options[q.Correct], want.StringFixed(3))
		}
	}

	again, _ := metricx.GenerateQuestions(rand.New(rand.NewSource(7)), catalog, 10)
	for i := range questions {
		if questions[i].Text != again[i].Text || questions[i].Correct != again[i].Correct {
			t.Errorf("question %d differs for the same seed", i)
		}
	}
}

func TestGenerateQuestionsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := metricx.GenerateQuestions(rng, nil, -1); err == nil {
		t.Errorf("negative count accepted")
	}
	qs, err := metricx.GenerateQuestions(rng, nil, 0)
	if err != nil || len(qs) != 0 {
		t.Errorf("zero count = %v, %v", qs, err)
	}
}

func TestChallengeScoringAndLevels(t *testing.T) {
	game := metricx.NewChallenge(fixedQuestions(6), metricx.ChallengeOptions{})

	wantPoints := []int{10, 10, 10, 20, 20, 20}
	for i, want := range wantPoints {
		ans, err := game.Answer(0)
		if err != nil {
			t.Fatal(err)
		}
		if !ans.Correct || ans.Points != want {
			t.Errorf("answer %d: %+v, want %d points", i, ans, want)
		}
		if ans.LevelUp != (i == 2 || i == 5) {
			t.Errorf("answer %d: level up = %v", i, ans.LevelUp)
		}
	}
	score, level := game.Score()
	if score != 90 || level != 3 {
		t.Errorf("score %d level %d, want 90 and 3", score, level)
	}
	if !game.Over() {
		t.Errorf("game should be over after the last question")
	}
	if _, err := game.Answer(0); !errors.Is(err, metricx.ErrChallengeOver) {
		t.Errorf("answer after end: %v", err)
	}
}

func TestChallengeWrongAnswerKeepsLevel(t *testing.T) {
	game := metricx.NewChallenge(fixedQuestions(4), metricx.ChallengeOptions{})
	game.Answer(0)
	game.Answer(0)
	ans, err := game.Answer(1)
	if err != nil {
		t.Fatal(err)
	}
	if ans.Correct || ans.Points != 0 || ans.LevelUp {
		t.Errorf("wrong answer = %+v", ans)
	}
	if _, err := game.Answer(9); !errors.Is(err, metricx.ErrInvalidOption) {
		t.Errorf("option 9: %v", err)
	}
	score, level := game.Score()
	if score != 20 || level != 1 {
		t.Errorf("score %d level %d", score, level)
	}
}

func TestChallengeTimeout(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	game := metricx.NewChallenge(fixedQuestions(10), metricx.ChallengeOptions{Now: clock})

	now = now.Add(45 * time.Second)
	if got := game.Remaining(); got != 15*time.Second {
		t.Errorf("remaining = %v", got)
	}
	if _, err := game.Answer(0); err != nil {
		t.Fatal(err)
	}

	now = now.Add(16 * time.Second)
	if !game.Over() || game.Remaining() != 0 {
		t.Errorf("game still running after the time limit")
	}
	if _, err := game.Answer(0); !errors.Is(err, metricx.ErrChallengeOver) {
		t.Errorf("answer after timeout: %v", err)
	}
	if _, ok := game.Current(); ok {
		t.Errorf("Current() returned a question after timeout")
	}
}

func TestChallengeFinish(t *testing.T) {
	ctx := context.Background()
	store := metricx.NewMemoryStore()
	tracker := metricx.NewTracker(store, quietLogger())
	game := metricx.NewChallenge(fixedQuestions(6), metricx.ChallengeOptions{Tracker: tracker, Scores: store})
	for !game.Over() {
		game.Answer(0)
	}

	result, err := game.Finish(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 90 || result.Level != 3 || result.Accuracy != 50 {
		t.Errorf("result = %+v", result)
	}
	if _, err := game.Finish(ctx); err != nil {
		t.Fatal(err)
	}
	scores, _ := store.TopScores(ctx, 0)
	if len(scores) != 1 || scores[0].Score != 90 {
		t.Errorf("scores = %v", scores)
	}
	if !unlocked(t, tracker, metricx.AchievementGamePlayer) {
		t.Errorf("game_player not unlocked")
	}
}

func TestHighScoresKeepTopTen(t *testing.T) {
	ctx := context.Background()
	store := metricx.NewMemoryStore()
	for i := 1; i <= 12; i++ {
		if err := store.AddScore(ctx, metricx.Score{Score: i * 10, Date: time.Now()}); err != nil {
			t.Fatal(err)
		}
	}
	scores, _ := store.TopScores(ctx, 0)
	if len(scores) != 10 || scores[0].Score != 120 || scores[9].Score != 30 {
		t.Errorf("scores = %v", scores)
	}
	top3, _ := store.TopScores(ctx, 3)
	if len(top3) != 3 || top3[2].Score != 100 {
		t.Errorf("top3 = %v", top3)
	}
}

func TestRace(t *testing.T) {
	ctx := context.Background()
	tracker := metricx.NewTracker(metricx.NewMemoryStore(), quietLogger())
	race := metricx.NewRace(fixedQuestions(3), tracker)

	ok, err := race.Submit(16.45)
	if err != nil || !ok {
		t.Fatalf("close answer = %v, %v", ok, err)
	}
	if !race.AIAnswer() {
		t.Errorf("AI should answer the second question")
	}
	if race.AIAnswer() {
		t.Errorf("AI answered the same question twice")
	}
	if ok, _ := race.Submit(20); ok {
		t.Errorf("answer 20 accepted for 16.404")
	}
	if ok, _ := race.Submit(16.5); !ok {
		t.Errorf("answer 16.5 rejected for 16.404")
	}
	if !race.Done() {
		t.Fatalf("race should be done")
	}
	if _, err := race.Submit(1); !errors.Is(err, metricx.ErrChallengeOver) {
		t.Errorf("submit after end: %v", err)
	}

	player, ai := race.Positions()
	if player != 40 || ai != 20 {
		t.Errorf("positions %d/%d", player, ai)
	}
	if got := race.Outcome(ctx); got != metricx.RaceWon {
		t.Errorf("outcome = %v", got)
	}
	if !unlocked(t, tracker, metricx.AchievementSpeedDemon) {
		t.Errorf("winning the race should unlock speed_demon")
	}
}

func TestRaceNonFiniteAnswers(t *testing.T) {
	race := metricx.NewRace(fixedQuestions(3), nil)
	for _, answer := range []float64{math.NaN(), metricx.ParseValue("Infinity"), math.Inf(-1)} {
		ok, err := race.Submit(answer)
		if err != nil || ok {
			t.Errorf("Submit(%v) = %v, %v", answer, ok, err)
		}
	}
	if player, _ := race.Positions(); player != 0 {
		t.Errorf("player moved to %d", player)
	}
	if !race.Done() {
		t.Errorf("non-finite answers should still use up the questions")
	}
}

func TestRaceOutcomeString(t *testing.T) {
	cases := map[metricx.RaceOutcome]string{
		metricx.RaceWon:  "You won the race!",
		metricx.RaceTied: "It's a tie!",
		metricx.RaceLost: "AI won this time!",
	}
	for o, want := range cases {
		if got := o.String(); got != want {
			t.Errorf("%d: %q", o, got)
		}
	}
}
