package patterns

import (
	"math"
	"sort"
	"strings"

	"github.com/trogers1052/supershares/internal/models"
)

// DefaultLookback is the number of recent matches returned when none is given
const DefaultLookback = 5

// minBars is the shortest series the detector will scan
const minBars = 5

// Pattern name constants
const (
	Doji             = "Doji"
	Hammer           = "Hammer"
	InvertedHammer   = "Inverted Hammer"
	ShootingStar     = "Shooting Star"
	BullishEngulfing = "Bullish Engulfing"
	BearishEngulfing = "Bearish Engulfing"
	BullishHarami    = "Bullish Harami"
	BearishHarami    = "Bearish Harami"
)

const learnBaseURL = "https://www.investopedia.com/search?q="

var meanings = map[string]string{
	Doji:             "Indecision: open ≈ close.",
	Hammer:           "Possible bullish reversal found at bottoms.",
	InvertedHammer:   "Possible bullish reversal attempt.",
	ShootingStar:     "Bearish reversal signal found at tops.",
	BullishEngulfing: "Strong bullish move swallowing previous red candle.",
	BearishEngulfing: "Strong bearish move swallowing previous green candle.",
	BullishHarami:    "Downtrend pausing (small green inside large red).",
	BearishHarami:    "Uptrend pausing (small red inside large green).",
}

// candle holds the geometry of a bar and its predecessor
type candle struct {
	prev, curr models.Bar
	body       float64
	rng        float64
	upperWick  float64
	lowerWick  float64
	prevBody   float64
}

func newCandle(prev, curr models.Bar) candle {
	return candle{
		prev:      prev,
		curr:      curr,
		body:      math.Abs(curr.Close - curr.Open),
		rng:       math.Max(0.0001, curr.High-curr.Low),
		upperWick: curr.High - math.Max(curr.Open, curr.Close),
		lowerWick: math.Min(curr.Open, curr.Close) - curr.Low,
		prevBody:  math.Abs(prev.Close - prev.Open),
	}
}

// rule labels a candle when it matches. Rules are evaluated in order and the
// first match wins, so the order of this slice is part of the contract.
type rule struct {
	name  string
	match func(c candle) (string, bool)
}

func is(name string, ok bool) (string, bool) {
	return name, ok
}

var rules = []rule{
	{Doji, func(c candle) (string, bool) {
		return is(Doji, c.body <= 0.15*c.rng)
	}},
	{Hammer, func(c candle) (string, bool) {
		return is(Hammer, c.lowerWick >= 2*c.body && c.upperWick <= 0.3*c.body)
	}},
	{InvertedHammer, func(c candle) (string, bool) {
		if c.upperWick >= 2*c.body && c.lowerWick <= 0.3*c.body {
			if c.prev.IsBearish() {
				return InvertedHammer, true
			}
			return ShootingStar, true
		}
		return "", false
	}},
	{BullishEngulfing, func(c candle) (string, bool) {
		return is(BullishEngulfing, c.body > c.prevBody &&
			c.curr.Close > c.prev.Open && c.curr.Open < c.prev.Close &&
			c.curr.IsBullish() && !c.prev.IsBullish())
	}},
	{BearishEngulfing, func(c candle) (string, bool) {
		return is(BearishEngulfing, c.body > c.prevBody &&
			c.curr.Close < c.prev.Open && c.curr.Open > c.prev.Close &&
			!c.curr.IsBullish() && c.prev.IsBullish())
	}},
	{BearishHarami, func(c candle) (string, bool) {
		return is(BearishHarami, c.body < 0.7*c.prevBody &&
			c.curr.Open > c.prev.Close && c.curr.Close < c.prev.Open &&
			!c.curr.IsBullish() && c.prev.IsBullish())
	}},
	{BullishHarami, func(c candle) (string, bool) {
		return is(BullishHarami, c.body < 0.7*c.prevBody &&
			c.curr.Open < c.prev.Close && c.curr.Close > c.prev.Open &&
			c.curr.IsBullish() && !c.prev.IsBullish())
	}},
}

// Classify returns the pattern formed by curr relative to prev, or "" when
// no rule matches.
func Classify(prev, curr models.Bar) string {
	c := newCandle(prev, curr)
	for _, r := range rules {
		if name, ok := r.match(c); ok {
			return name
		}
	}
	return ""
}

// Meaning returns the static explanation for a pattern name
func Meaning(name string) string {
	return meanings[name]
}

// LearnURL builds the reference search link for a pattern name
func LearnURL(name string) string {
	return learnBaseURL + strings.ReplaceAll(name, " ", "+")
}

// Detect scans the tail of the series and returns up to n pattern matches,
// most recent first. n <= 0 selects DefaultLookback.
func Detect(bars []models.Bar, n int) []models.PatternMatch {
	if n <= 0 {
		n = DefaultLookback
	}
	if len(bars) < minBars {
		return nil
	}

	start := len(bars) - (n + 2)
	if start < 0 {
		start = 0
	}
	tail := bars[start:]

	var matches []models.PatternMatch
	for i := 1; i < len(tail); i++ {
		name := Classify(tail[i-1], tail[i])
		if name == "" {
			continue
		}
		matches = append(matches, models.PatternMatch{
			Date:    tail[i].Date,
			Pattern: name,
			Meaning: Meaning(name),
			Learn:   LearnURL(name),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.After(matches[j].Date)
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}
