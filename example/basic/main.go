package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"metricx"
	metricxmsgpack "metricx/msgpack"
	metricxpb "metricx/pb"
	"metricx/sqlite"
)

func codecFor(name string) metricx.RecordCodec {
	if name == "protobuf" {
		return metricxpb.Codec{}
	}
	return metricxmsgpack.Codec{}
}

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := metricx.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	// Remove existing database file for a clean example run
	fmt.Println("removing", cfg.DBPath)
	_ = os.Remove(cfg.DBPath)

	fmt.Println("initialize sqlite")
	store, err := sqlite.Open(cfg.DBPath, codecFor(cfg.Codec))
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()
	defer fmt.Println("closing db")

	tracker := metricx.NewTracker(store, logger)
	history := metricx.NewHistory(
		metricx.WithHistoryStore(store),
		metricx.WithHistoryLimit(cfg.HistoryLimit),
		metricx.WithHistoryLogger(logger),
	)
	history.AddHook(tracker.HistoryHook())
	if err := history.Load(ctx); err != nil {
		log.Fatal(err)
	}

	converter := metricx.NewConverter(metricx.DefaultCatalog())

	fmt.Println("convert")
	inputs := []struct {
		text, from, to string
	}{
		{"5", "meter", "foot"},
		{"10", "kilometer", "mile"},
		{"1", "light-year", "kilometer"},
		{"1", "inch", "micrometer"},
		{"abc", "meter", "yard"},
		{"3", "pound", "kilogram"},
	}
	for _, in := range inputs {
		conv, err := converter.ConvertText(in.text, in.from, in.to)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(" ", conv.Display())
		if _, err := history.Record(ctx, conv); err != nil {
			log.Fatal(err)
		}
	}

	if _, err := converter.Convert(1, "meter", "kilogram"); err != nil {
		fmt.Println("  rejected:", err)
	}

	for _, q := range metricx.QuickConversions {
		conv, err := converter.Quick(q.Key)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  [%s] %s\n", q.Key, conv.Display())
	}

	fmt.Println("history")
	now := time.Now()
	for _, rec := range history.Records() {
		fmt.Printf("  %-32s %-24s %s\n",
			metricx.HistoryLine(rec, converter.Catalog()),
			metricx.HistoryDetail(rec, converter.Catalog()),
			metricx.TimeAgo(now, rec.Timestamp))
	}

	fmt.Println("history log")
	for _, line := range history.Logs() {
		fmt.Println(" ", line)
	}

	var export bytes.Buffer
	if err := metricxmsgpack.WriteRecords(&export, history.Records()); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("history export: %d bytes\n", export.Len())

	fmt.Println("voice")
	answer, err := metricx.RespondToVoice(ctx, converter, tracker, "Convert 12 inches to centimeters")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(" ", answer)

	fmt.Println("theme")
	prefs := metricx.NewPreferences(store, tracker)
	theme, err := prefs.Toggle(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("  mode:", theme)
	scheme, err := prefs.ApplyScheme(ctx, "ocean")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("  scheme:", scheme.Name, scheme.Primary)

	fmt.Println("challenge")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	questions, err := metricx.GenerateQuestions(rng, converter.Catalog(), cfg.ChallengeQuestions)
	if err != nil {
		log.Fatal(err)
	}
	game := metricx.NewChallenge(questions, metricx.ChallengeOptions{
		Duration: cfg.ChallengeDuration,
		Tracker:  tracker,
		Scores:   store,
	})
	for !game.Over() {
		q, _ := game.Current()
		if _, err := game.Answer(q.Correct); err != nil {
			log.Fatal(err)
		}
	}
	result, err := game.Finish(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("  score %d, level %d, accuracy %d%%\n", result.Score, result.Level, result.Accuracy)

	fmt.Println("race")
	raceQuestions, err := metricx.GenerateQuestions(rng, converter.Catalog(), cfg.RaceQuestions)
	if err != nil {
		log.Fatal(err)
	}
	race := metricx.NewRace(raceQuestions, tracker)
	for i := 0; !race.Done(); i++ {
		q, _ := race.Current()
		if i%2 == 1 {
			race.AIAnswer()
		}
		answer, _ := q.Answer.Float64()
		if _, err := race.Submit(answer); err != nil {
			log.Fatal(err)
		}
	}
	player, ai := race.Positions()
	fmt.Printf("  %d vs %d: %s\n", player, ai, race.Outcome(ctx))

	fmt.Println("quiz")
	quiz := metricx.NewQuiz(tracker)
	for {
		q, ok := quiz.Current()
		if !ok {
			break
		}
		if _, err := quiz.Answer(ctx, q.Correct); err != nil {
			log.Fatal(err)
		}
	}
	qr := quiz.Result()
	fmt.Printf("  %d/%d (%d%%) %s\n", qr.Score, qr.Total, qr.Percent, qr.Message)

	progress, err := tracker.Progress(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("achievements: %d/%d (%d%%)\n", progress.Unlocked, progress.Total, progress.Percent())
}
