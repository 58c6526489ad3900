package metricx

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var commandNumber = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// irregular spoken forms mapped to unit ids
var spokenAliases = map[string]string{
	"feet":   "foot",
	"inches": "inch",
	"metre":  "meter",
	"metres": "meter",
}

var spokenPlurals = map[string]string{
	"foot": "feet",
	"inch": "inches",
}

type Command struct {
	Value float64
	From  string
	To    string
}

// CommandParser turns phrases like "convert 5 meters to feet" into a Command.
type CommandParser struct {
	aliases map[string]string // spoken phrase -> unit id
	unit    *regexp.Regexp
	target  *regexp.Regexp
}

func NewCommandParser(catalog *Catalog) *CommandParser {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	p := &CommandParser{aliases: make(map[string]string)}
	for _, c := range catalog.Categories() {
		for _, u := range c.Units() {
			p.aliases[strings.ReplaceAll(u.ID, "-", " ")] = u.ID
			p.aliases[strings.ToLower(u.DisplayName)] = u.ID
		}
	}
	for alias, id := range spokenAliases {
		if _, _, err := catalog.Lookup(id); err == nil {
			p.aliases[alias] = id
		}
	}

	phrases := make([]string, 0, len(p.aliases))
	for phrase := range p.aliases {
		phrases = append(phrases, regexp.QuoteMeta(phrase))
	}
	// longest first so "square meter" wins over "meter"
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	alt := strings.Join(phrases, "|")
	p.unit = regexp.MustCompile(`\b(` + alt + `)(?:es|s)?\b`)
	p.target = regexp.MustCompile(`\b(?:in)?to\s+(` + alt + `)(?:es|s)?\b`)
	return p
}

func (p *CommandParser) Parse(text string) (Command, error) {
	lower := strings.ToLower(strings.ReplaceAll(text, "-", " "))

	num := commandNumber.FindString(lower)
	target := p.target.FindStringSubmatchIndex(lower)
	if num == "" || target == nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, text)
	}
	source := p.unit.FindStringSubmatch(lower[:target[0]])
	if source == nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, text)
	}
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, text)
	}
	return Command{
		Value: value,
		From:  p.aliases[source[1]],
		To:    p.aliases[lower[target[2]:target[3]]],
	}, nil
}

// ParseCommand parses text against the default catalog.
func ParseCommand(text string) (Command, error) {
	return NewCommandParser(nil).Parse(text)
}

// Answer converts the command and phrases the result the way the assistant
// speaks it: "5 meters = 16.4042 feet".
func (cmd Command) Answer(c *Converter) (string, error) {
	conv, err := c.Convert(cmd.Value, cmd.From, cmd.To)
	if err != nil {
		return "", err
	}
	result := conv.Record.OutputValue
	return fmt.Sprintf("%s %s = %s %s",
		strconv.FormatFloat(cmd.Value, 'f', -1, 64), spokenUnit(cmd.From, cmd.Value != 1),
		spokenNumber(result), spokenUnit(cmd.To, result != 1)), nil
}

func spokenNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(4)
}

func spokenUnit(id string, many bool) string {
	if many {
		if p, ok := spokenPlurals[id]; ok {
			return p
		}
	}
	return plural(strings.ReplaceAll(id, "-", " "), many)
}

// RespondToVoice parses and answers a spoken command, unlocking voice_user
// on success. tracker may be nil.
func RespondToVoice(ctx context.Context, c *Converter, tracker *Tracker, text string) (string, error) {
	cmd, err := NewCommandParser(c.Catalog()).Parse(text)
	if err != nil {
		return "", err
	}
	answer, err := cmd.Answer(c)
	if err != nil {
		return "", err
	}
	tracker.unlock(ctx, AchievementVoiceUser)
	return answer, nil
}
