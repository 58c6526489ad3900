package metricx

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ChallengeDuration  = 60 * time.Second
	ChallengeQuestions = 10
	RaceQuestions      = 5
	RaceStep           = 20
	MaxHighScores      = 10
)

var (
	answerPlaces    int32 = 3
	raceTolerance         = decimal.NewFromFloat(0.1)
	distractorRates       = []decimal.Decimal{
		decimal.NewFromFloat(1.2),
		decimal.NewFromFloat(0.8),
		decimal.NewFromFloat(1.5),
	}
)

// challengePairs are the conversions the games ask about.
var challengePairs = [][2]string{
	{"meter", "foot"},
	{"kilometer", "mile"},
	{"inch", "centimeter"},
	{"yard", "meter"},
	{"mile", "kilometer"},
}

type ChallengeQuestion struct {
	Value   int
	From    string
	To      string
	Text    string
	Options []string
	Correct int
	Answer  decimal.Decimal // correct value rounded to 3 places
}

// GenerateQuestions builds n multiple-choice questions with values 1..100.
// Answers come from the conversion engine; the three distractors are the
// answer scaled by 1.2, 0.8 and 1.5.
func GenerateQuestions(rng *rand.Rand, catalog *Catalog, n int) ([]ChallengeQuestion, error) {
	if n < 0 {
		return nil, fmt.Errorf("question count must not be negative, got %d", n)
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	questions := make([]ChallengeQuestion, 0, n)
	for i := 0; i < n; i++ {
		pair := challengePairs[rng.Intn(len(challengePairs))]
		from, _, err := catalog.Lookup(pair[0])
		if err != nil {
			return nil, err
		}
		to, _, err := catalog.Lookup(pair[1])
		if err != nil {
			return nil, err
		}
		value := rng.Intn(100) + 1
		correct := decimal.NewFromFloat(Convert(float64(value), from, to)).Round(answerPlaces)

		values := []decimal.Decimal{correct}
		for _, rate := range distractorRates {
			values = append(values, correct.Mul(rate).Round(answerPlaces))
		}
		order := rng.Perm(len(values))

		q := ChallengeQuestion{
			Value:  value,
			From:   from.ID,
			To:     to.ID,
			Text:   fmt.Sprintf("Convert %d %s to %s", value, plural(from.ID, value > 1), plural(to.ID, value > 1)),
			Answer: correct,
		}
		for pos, idx := range order {
			v := values[idx]
			q.Options = append(q.Options, v.StringFixed(answerPlaces)+" "+plural(to.ID, v.GreaterThan(decimal.NewFromInt(1))))
			if idx == 0 {
				q.Correct = pos
			}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func plural(unit string, many bool) string {
	if many {
		return unit + "s"
	}
	return unit
}

type ChallengeOptions struct {
	Duration time.Duration
	Now      func() time.Time
	Tracker  *Tracker
	Scores   ScoreStore
}

type ChallengeAnswer struct {
	Correct bool
	Points  int
	LevelUp bool
}

type ChallengeResult struct {
	Score    int
	Level    int
	Accuracy int
}

// Challenge is the timed multiple-choice game. Each correct answer scores
// level*10 points; a correct answer on every third question raises the level.
type Challenge struct {
	mutex     sync.Mutex
	questions []ChallengeQuestion
	current   int
	score     int
	level     int
	start     time.Time
	duration  time.Duration
	now       func() time.Time
	tracker   *Tracker
	scores    ScoreStore
	finished  bool
	result    ChallengeResult
}

func NewChallenge(questions []ChallengeQuestion, opts ChallengeOptions) *Challenge {
	if opts.Duration <= 0 {
		opts.Duration = ChallengeDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Challenge{
		questions: questions,
		level:     1,
		start:     opts.Now(),
		duration:  opts.Duration,
		now:       opts.Now,
		tracker:   opts.Tracker,
		scores:    opts.Scores,
	}
}

func (c *Challenge) Current() (ChallengeQuestion, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.overLocked() {
		return ChallengeQuestion{}, false
	}
	return c.questions[c.current], true
}

func (c *Challenge) Answer(option int) (ChallengeAnswer, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.overLocked() {
		return ChallengeAnswer{}, ErrChallengeOver
	}
	q := c.questions[c.current]
	if option < 0 || option >= len(q.Options) {
		return ChallengeAnswer{}, fmt.Errorf("%w: %d", ErrInvalidOption, option)
	}
	var ans ChallengeAnswer
	if option == q.Correct {
		ans.Correct = true
		ans.Points = c.level * 10
		c.score += ans.Points
		if (c.current+1)%3 == 0 {
			c.level++
			ans.LevelUp = true
		}
	}
	c.current++
	return ans, nil
}

func (c *Challenge) Remaining() time.Duration {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	left := c.duration - c.now().Sub(c.start)
	if left < 0 {
		return 0
	}
	return left
}

func (c *Challenge) Over() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.overLocked()
}

func (c *Challenge) overLocked() bool {
	return c.finished || c.current >= len(c.questions) || c.now().Sub(c.start) >= c.duration
}

func (c *Challenge) Score() (score, level int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.score, c.level
}

// Finish ends the game, saves the score and unlocks game_player. Calling it
// again returns the same result without saving twice.
func (c *Challenge) Finish(ctx context.Context) (ChallengeResult, error) {
	c.mutex.Lock()
	if c.finished {
		defer c.mutex.Unlock()
		return c.result, nil
	}
	c.finished = true
	c.result = ChallengeResult{Score: c.score, Level: c.level}
	if total := len(c.questions) * c.level * 10; total > 0 {
		c.result.Accuracy = int(math.Round(float64(c.score) / float64(total) * 100))
	}
	result := c.result
	c.mutex.Unlock()

	if c.scores != nil {
		if err := c.scores.AddScore(ctx, Score{Score: result.Score, Date: c.now()}); err != nil {
			return result, fmt.Errorf("save high score: %w", err)
		}
	}
	c.tracker.unlock(ctx, AchievementGamePlayer)
	return result, nil
}

type RaceOutcome int

const (
	RaceLost RaceOutcome = iota - 1
	RaceTied
	RaceWon
)

func (o RaceOutcome) String() string {
	switch o {
	case RaceWon:
		return "You won the race!"
	case RaceTied:
		return "It's a tie!"
	default:
		return "AI won this time!"
	}
}

// Race asks for typed answers; one within 0.1 of the correct value moves
// the player forward. NaN and infinite answers are wrong. The opponent moves when AIAnswer fires first.
type Race struct {
	mutex      sync.Mutex
	questions  []ChallengeQuestion
	current    int
	player     int
	ai         int
	aiAnswered map[int]bool
	tracker    *Tracker
}

func NewRace(questions []ChallengeQuestion, tracker *Tracker) *Race {
	return &Race{questions: questions, aiAnswered: make(map[int]bool), tracker: tracker}
}

func (r *Race) Current() (ChallengeQuestion, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.current >= len(r.questions) {
		return ChallengeQuestion{}, false
	}
	return r.questions[r.current], true
}

func (r *Race) Submit(answer float64) (bool, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.current >= len(r.questions) {
		return false, ErrChallengeOver
	}
	q := r.questions[r.current]
	r.current++
	if math.IsNaN(answer) || math.IsInf(answer, 0) {
		return false, nil
	}
	if decimal.NewFromFloat(answer).Sub(q.Answer).Abs().LessThan(raceTolerance) {
		r.player += RaceStep
		return true, nil
	}
	return false, nil
}

// AIAnswer moves the opponent once per question, and only while the
// player has not answered it yet.
func (r *Race) AIAnswer() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.current >= len(r.questions) || r.aiAnswered[r.current] {
		return false
	}
	r.aiAnswered[r.current] = true
	r.ai += RaceStep
	return true
}

func (r *Race) Positions() (player, ai int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.player, r.ai
}

func (r *Race) Done() bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.current >= len(r.questions)
}

// Outcome compares positions; a win unlocks speed_demon.
func (r *Race) Outcome(ctx context.Context) RaceOutcome {
	player, ai := r.Positions()
	switch {
	case player > ai:
		r.tracker.unlock(ctx, AchievementSpeedDemon)
		return RaceWon
	case player == ai:
		return RaceTied
	default:
		return RaceLost
	}
}
