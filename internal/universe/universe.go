package universe

import (
	"net/url"
	"strings"

	"github.com/trogers1052/supershares/internal/models"
)

// Group names
const (
	GroupAll         = "All"
	GroupIndia       = "India (NSE)"
	GroupUSA         = "USA (NYSE/Nasdaq)"
	GroupAIChips     = "AI / Chips"
	GroupMegaCap     = "Mega-cap"
	GroupBonds       = "Bonds"
	GroupCommodities = "Commodities"
	GroupDefense     = "Defense"
	GroupLogistics   = "Logistics"
	GroupPharma      = "Pharma / MedTech"
	GroupDefault     = "Industrials"
)

var sectors = []string{
	"ETFs & Indexes",
	"Big Tech",
	"Semiconductors",
	"Financials",
	"Consumer",
	"Healthcare",
	"Energy",
	"Industrials",
}

var groups = append(append([]string{GroupAll}, sectors...),
	GroupMegaCap,
	GroupAIChips,
	GroupBonds,
	GroupCommodities,
	GroupDefense,
	GroupLogistics,
	GroupPharma,
	GroupIndia,
	GroupUSA,
)

var (
	instruments []models.Instrument
	byTicker    map[string]int
)

func init() {
	instruments = make([]models.Instrument, len(table))
	byTicker = make(map[string]int, len(table))
	for i, e := range table {
		inst := models.Instrument{
			Ticker: e.ticker,
			Name:   e.name,
			Sector: e.sector,
			Market: e.market,
			Tags:   e.tags,
			Links:  links(e.ticker, e.query),
		}
		inst.Group = Group(inst)
		instruments[i] = inst
		byTicker[e.ticker] = i
	}
}

func links(ticker, query string) map[string]string {
	return map[string]string{
		"yahoo":  "https://finance.yahoo.com/quote/" + url.QueryEscape(ticker),
		"google": "https://www.google.com/search?q=" + url.QueryEscape(query),
	}
}

// All returns a copy of the full instrument universe in table order
func All() []models.Instrument {
	out := make([]models.Instrument, len(instruments))
	copy(out, instruments)
	return out
}

// Lookup finds an instrument by ticker (case-insensitive)
func Lookup(ticker string) (models.Instrument, bool) {
	i, ok := byTicker[strings.ToUpper(strings.TrimSpace(ticker))]
	if !ok {
		return models.Instrument{}, false
	}
	return instruments[i], true
}

// Sectors returns the display order of sectors
func Sectors() []string {
	return append([]string(nil), sectors...)
}

// Groups returns the display order of groups
func Groups() []string {
	return append([]string(nil), groups...)
}

// CurrencyPrefix returns the display currency symbol for a market
func CurrencyPrefix(market string) string {
	if strings.EqualFold(market, models.MarketIndia) {
		return "₹"
	}
	return "$"
}

// Filter selects instruments. Empty fields and "All" match everything.
type Filter struct {
	Market string
	Sector string
	Group  string
	Ticker string
}

// Select returns the instruments matching the filter, in table order
func Select(f Filter) []models.Instrument {
	var out []models.Instrument
	for _, inst := range instruments {
		if !matchesAll(f.Market) && !strings.EqualFold(inst.Market, f.Market) {
			continue
		}
		if !matchesAll(f.Sector) && inst.Sector != f.Sector {
			continue
		}
		if !matchesAll(f.Group) && inst.Group != f.Group {
			continue
		}
		if f.Ticker != "" && !strings.EqualFold(inst.Ticker, f.Ticker) {
			continue
		}
		out = append(out, inst)
	}
	return out
}

// ByTickers returns the known instruments for the given tickers, in table order
func ByTickers(tickers []string) []models.Instrument {
	want := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		want[strings.ToUpper(t)] = true
	}
	var out []models.Instrument
	for _, inst := range instruments {
		if want[inst.Ticker] {
			out = append(out, inst)
		}
	}
	return out
}

// Peers returns up to limit other instruments of the same sector
func Peers(ticker string, limit int) []models.Instrument {
	me, ok := Lookup(ticker)
	if !ok {
		return nil
	}
	var out []models.Instrument
	for _, inst := range instruments {
		if len(out) >= limit {
			break
		}
		if inst.Sector == me.Sector && inst.Ticker != me.Ticker {
			out = append(out, inst)
		}
	}
	return out
}

func matchesAll(v string) bool {
	return v == "" || v == GroupAll
}
