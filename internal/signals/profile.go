package signals

import "strings"

// Strategy profile names
const (
	ProfileTrader = "TRADER"
	ProfileSwing  = "SWING"
)

// Profile carries the risk parameters of a trading style
type Profile struct {
	Name               string  `json:"name"`
	StopATRMultiple    float64 `json:"stop_atr_multiple"`
	TargetRiskMultiple float64 `json:"target_risk_multiple"`
	RSIBuyFloor        float64 `json:"rsi_buy_floor"`
}

var (
	// Trader is the default short-horizon profile
	Trader = Profile{Name: ProfileTrader, StopATRMultiple: 2.0, TargetRiskMultiple: 2.0, RSIBuyFloor: 40}
	// Swing allows wider stops and deeper pullbacks
	Swing = Profile{Name: ProfileSwing, StopATRMultiple: 2.5, TargetRiskMultiple: 2.5, RSIBuyFloor: 35}
)

// ProfileFor resolves a profile by name. Unknown names fall back to Trader.
func ProfileFor(name string) Profile {
	if strings.EqualFold(strings.TrimSpace(name), ProfileSwing) {
		return Swing
	}
	return Trader
}
