package signals

import "github.com/trogers1052/supershares/internal/models"

// Takeaways are plain-language readings of the three trend horizons
type Takeaways struct {
	Short  string `json:"short"`
	Medium string `json:"medium"`
	Long   string `json:"long"`
}

// ProsCons lists the bullish and bearish observations on the latest bar
type ProsCons struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// Explain builds the takeaways for the latest bar of the series
func Explain(series []models.AnnotatedBar) Takeaways {
	if len(series) == 0 {
		return Takeaways{}
	}
	last := series[len(series)-1]
	price := last.Close

	return Takeaways{
		Short:  "Price is " + pick(greater(&price, last.MA20), "above", "below") + " MA20.",
		Medium: "Trend is " + pick(greater(last.MA20, last.MA50), "HEALTHY", "WEAK") + ".",
		Long:   "Structure is " + pick(greater(last.MA50, last.MA200), "POSITIVE", "NEGATIVE") + ".",
	}
}

// Assess lists pros and cons for the latest bar of the series
func Assess(series []models.AnnotatedBar) ProsCons {
	pc := ProsCons{Pros: []string{}, Cons: []string{}}
	if len(series) == 0 {
		return pc
	}
	last := series[len(series)-1]
	price := last.Close

	if greater(&price, last.MA200) {
		pc.Pros = append(pc.Pros, "Trading above 200-day MA (Bullish).")
	} else {
		pc.Cons = append(pc.Cons, "Trading below 200-day MA (Bearish).")
	}

	if last.RSI14 != nil {
		switch {
		case *last.RSI14 < 35:
			pc.Pros = append(pc.Pros, "RSI is Oversold (Potential bounce).")
		case *last.RSI14 > 65:
			pc.Cons = append(pc.Cons, "RSI is Overbought (Caution).")
		}
	}

	if last.ATRPct != nil && *last.ATRPct < 1.5 {
		pc.Pros = append(pc.Pros, "Volatility is Low (Stable).")
	}
	return pc
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
