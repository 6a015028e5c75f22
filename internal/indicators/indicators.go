package indicators

import (
	"math"

	"github.com/trogers1052/supershares/internal/models"
)

// Standard periods used by the dashboard
const (
	PeriodMA20  = 20
	PeriodMA50  = 50
	PeriodMA200 = 200
	PeriodRSI   = 14
	PeriodATR   = 14
)

// Compute annotates every bar with its indicator set. Each value depends only
// on the prefix of the series ending at that bar.
func Compute(bars []models.Bar) []models.AnnotatedBar {
	out := make([]models.AnnotatedBar, len(bars))
	if len(bars) == 0 {
		return out
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	ma20 := SMA(closes, PeriodMA20)
	ma50 := SMA(closes, PeriodMA50)
	ma200 := SMA(closes, PeriodMA200)
	rsi := WilderRSI(closes, PeriodRSI)
	atr := WilderATR(bars, PeriodATR)

	for i, b := range bars {
		out[i] = models.AnnotatedBar{
			Bar: b,
			IndicatorSet: models.IndicatorSet{
				MA20:   ma20[i],
				MA50:   ma50[i],
				MA200:  ma200[i],
				RSI14:  rsi[i],
				ATR14:  atr[i],
				ATRPct: atrPct(atr[i], b.Close),
			},
		}
	}
	return out
}

// SMA returns the simple moving average over the trailing period values.
// The first period-1 entries are nil.
func SMA(values []float64, period int) []*float64 {
	out := make([]*float64, len(values))
	if period <= 0 {
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = ptr(sum / float64(period))
		}
	}
	return out
}

// WilderRSI computes RSI with Wilder smoothing (alpha = 1/period) seeded at
// the first bar. Where the smoothed loss is exactly zero the RSI is nil.
func WilderRSI(closes []float64, period int) []*float64 {
	out := make([]*float64, len(closes))
	if len(closes) == 0 || period <= 0 {
		return out
	}
	alpha := 1 / float64(period)

	var avgGain, avgLoss float64
	for i := range closes {
		var gain, loss float64
		if i > 0 {
			delta := closes[i] - closes[i-1]
			if delta > 0 {
				gain = delta
			} else if delta < 0 {
				loss = -delta
			}
		}
		if i == 0 {
			avgGain, avgLoss = gain, loss
		} else {
			avgGain = smooth(avgGain, gain, alpha)
			avgLoss = smooth(avgLoss, loss, alpha)
		}

		if avgLoss == 0 {
			continue
		}
		rs := avgGain / avgLoss
		out[i] = ptr(100 - 100/(1+rs))
	}
	return out
}

// TrueRange returns max(|high-low|, |high-prevClose|, |low-prevClose|).
// The first bar has no previous close and uses |high-low|.
func TrueRange(bars []models.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		tr := math.Abs(b.High - b.Low)
		if i > 0 {
			pc := bars[i-1].Close
			tr = math.Max(tr, math.Abs(b.High-pc))
			tr = math.Max(tr, math.Abs(b.Low-pc))
		}
		out[i] = tr
	}
	return out
}

// WilderATR computes the Wilder-smoothed average true range
func WilderATR(bars []models.Bar, period int) []*float64 {
	out := make([]*float64, len(bars))
	if len(bars) == 0 || period <= 0 {
		return out
	}
	alpha := 1 / float64(period)

	var atr float64
	for i, tr := range TrueRange(bars) {
		if i == 0 {
			atr = tr
		} else {
			atr = smooth(atr, tr, alpha)
		}
		out[i] = ptr(atr)
	}
	return out
}

func atrPct(atr *float64, close float64) *float64 {
	if atr == nil || close == 0 {
		return nil
	}
	return ptr(*atr / close * 100)
}

func smooth(prev, x, alpha float64) float64 {
	return (1-alpha)*prev + alpha*x
}

func ptr(v float64) *float64 {
	return &v
}
