package signals

import (
	"math"

	"github.com/trogers1052/supershares/internal/models"
)

// Thresholds of the rule set
const (
	highVolatilityPct = 2.5
	lowVolatilityPct  = 1.2
	nearMAATRMultiple = 1.2
	rsiBuyCeiling     = 60

	scoreInvestBase  = 45
	scoreDefaultBase = 25
	scoreBuyBonus    = 10
	scoreSellWarning = 10

	entryPullback = "Pullback to MA"
)

// Decide maps the latest bar of an indicator-annotated series to a signal.
// Comparisons involving an undefined indicator evaluate to false, so missing
// history classifies as Bearish/Downtrend and never produces a BUY.
func Decide(series []models.AnnotatedBar, profile Profile, owned bool) models.Signal {
	if len(series) == 0 {
		return models.Signal{
			Decision:   models.DecisionWait,
			Confidence: models.ConfidenceMedium,
			Framework:  models.FrameworkWait,
			Score:      scoreDefaultBase,
			Volatility: models.VolatilityNormal,
		}
	}

	last := series[len(series)-1]
	price := last.Close

	medium := models.TrendBearish
	if greater(last.MA20, last.MA50) {
		medium = models.TrendBullish
	}
	long := models.TrendDowntrend
	if greater(last.MA50, last.MA200) {
		long = models.TrendUptrend
	}
	vol := volatility(last.ATRPct)
	short := "Bearish candle"
	if price > last.Open {
		short = "Bullish candle"
	}

	framework := models.FrameworkWait
	switch {
	case long == models.TrendUptrend && medium == models.TrendBullish && vol != models.VolatilityHigh:
		framework = models.FrameworkInvest
	case long == models.TrendDowntrend:
		framework = models.FrameworkAvoid
	}

	decision, entry := models.DecisionWait, ""
	switch {
	case framework == models.FrameworkInvest && nearMA(last) && rsiInBuyZone(last.RSI14, profile):
		decision, entry = models.DecisionBuy, entryPullback
	case framework == models.FrameworkAvoid:
		decision = models.DecisionAvoid
	}

	if owned && framework == models.FrameworkAvoid {
		decision = models.DecisionSellWarning
	}

	var stop, target *float64
	if decision == models.DecisionBuy && last.ATR14 != nil {
		s := price - profile.StopATRMultiple*(*last.ATR14)
		tg := price + profile.TargetRiskMultiple*(price-s)
		stop, target = &s, &tg
	}

	score := scoreDefaultBase
	if framework == models.FrameworkInvest {
		score = scoreInvestBase
	}
	if decision == models.DecisionBuy {
		score += scoreBuyBonus
	}
	if decision == models.DecisionSellWarning {
		score = scoreSellWarning
	}

	confidence := models.ConfidenceMedium
	if decision == models.DecisionBuy || decision == models.DecisionSellWarning {
		confidence = models.ConfidenceHigh
	}

	return models.Signal{
		Decision:   decision,
		Confidence: confidence,
		Entry:      entry,
		Stop:       stop,
		Target:     target,
		Framework:  framework,
		Score:      score,
		Short:      short,
		Medium:     medium,
		Long:       long,
		Volatility: vol,
		ATR:        copyOf(last.ATR14),
		RSI:        copyOf(last.RSI14),
	}
}

func volatility(atrPct *float64) string {
	switch {
	case atrPct != nil && *atrPct > highVolatilityPct:
		return models.VolatilityHigh
	case atrPct != nil && *atrPct < lowVolatilityPct:
		return models.VolatilityLow
	default:
		return models.VolatilityNormal
	}
}

func nearMA(b models.AnnotatedBar) bool {
	if b.ATR14 == nil {
		return false
	}
	dist := *b.ATR14 * nearMAATRMultiple
	return within(b.Close, b.MA20, dist) || within(b.Close, b.MA50, dist)
}

func within(price float64, ma *float64, dist float64) bool {
	return ma != nil && math.Abs(price-*ma) < dist
}

func rsiInBuyZone(rsi *float64, p Profile) bool {
	return rsi != nil && p.RSIBuyFloor <= *rsi && *rsi <= rsiBuyCeiling
}

// greater is a strict comparison that is false when either side is undefined
func greater(a, b *float64) bool {
	return a != nil && b != nil && *a > *b
}

func copyOf(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
