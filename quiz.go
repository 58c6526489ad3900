package metricx

import (
	"context"
	"fmt"
	"math"
	"sync"
)

type QuizQuestion struct {
	Question    string
	Options     []string
	Correct     int
	Explanation string
}

var QuizQuestions = []QuizQuestion{
	{
		Question:    "What is the SI base unit for length?",
		Options:     []string{"Meter", "Foot", "Inch", "Yard"},
		Correct:     0,
		Explanation: "The meter is the fundamental unit of length in the International System of Units (SI).",
	},
	{
		Question:    "How many feet are in a mile?",
		Options:     []string{"5,000", "5,280", "5,500", "6,000"},
		Correct:     1,
		Explanation: "A mile contains exactly 5,280 feet.",
	},
	{
		Question:    "What does 'nano' mean as a prefix?",
		Options:     []string{"One thousandth", "One millionth", "One billionth", "One trillionth"},
		Correct:     2,
		Explanation: "Nano means one billionth (10⁻⁹).",
	},
	{
		Question:    "Which unit is used for measuring astronomical distances?",
		Options:     []string{"Kilometer", "Light Year", "Meter", "Mile"},
		Correct:     1,
		Explanation: "Light years are commonly used to measure vast distances in space.",
	},
	{
		Question:    "How many centimeters are in an inch?",
		Options:     []string{"2.54", "2.45", "3.54", "1.54"},
		Correct:     0,
		Explanation: "One inch equals exactly 2.54 centimeters.",
	},
}

type QuizAnswer struct {
	Correct     bool
	CorrectIdx  int
	Explanation string
	Finished    bool
}

type QuizResult struct {
	Score   int
	Total   int
	Percent int
	Message string
}

type Quiz struct {
	mutex     sync.Mutex
	questions []QuizQuestion
	current   int
	score     int
	tracker   *Tracker
}

// NewQuiz starts a quiz over QuizQuestions. tracker may be nil.
func NewQuiz(tracker *Tracker) *Quiz {
	return &Quiz{questions: QuizQuestions, tracker: tracker}
}

func (q *Quiz) Current() (QuizQuestion, bool) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	if q.current >= len(q.questions) {
		return QuizQuestion{}, false
	}
	return q.questions[q.current], true
}

// Answer grades the current question and moves on. Answering the last
// question unlocks quiz_taker, and perfect_score on a full score.
func (q *Quiz) Answer(ctx context.Context, option int) (QuizAnswer, error) {
	q.mutex.Lock()
	if q.current >= len(q.questions) {
		q.mutex.Unlock()
		return QuizAnswer{}, ErrQuizFinished
	}
	question := q.questions[q.current]
	if option < 0 || option >= len(question.Options) {
		q.mutex.Unlock()
		return QuizAnswer{}, fmt.Errorf("%w: %d", ErrInvalidOption, option)
	}
	ans := QuizAnswer{
		Correct:     option == question.Correct,
		CorrectIdx:  question.Correct,
		Explanation: question.Explanation,
	}
	if ans.Correct {
		q.score++
	}
	q.current++
	ans.Finished = q.current == len(q.questions)
	perfect := q.score == len(q.questions)
	q.mutex.Unlock()

	if ans.Finished {
		q.tracker.unlock(ctx, AchievementQuizTaker)
		if perfect {
			q.tracker.unlock(ctx, AchievementPerfectScore)
		}
	}
	return ans, nil
}

func (q *Quiz) Result() QuizResult {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	r := QuizResult{Score: q.score, Total: len(q.questions)}
	if r.Total > 0 {
		r.Percent = int(math.Round(float64(r.Score) / float64(r.Total) * 100))
	}
	switch {
	case r.Percent >= 80:
		r.Message = "Excellent! You're a measurement expert!"
	case r.Percent >= 60:
		r.Message = "Good job! Keep learning!"
	default:
		r.Message = "Keep studying! Practice makes perfect!"
	}
	return r
}
