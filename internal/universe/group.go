package universe

import (
	"strings"

	"github.com/trogers1052/supershares/internal/models"
)

// groupRule assigns a group label when its predicate holds. Rules are
// evaluated in order; the first match wins.
type groupRule struct {
	label string
	match func(inst models.Instrument, tags []string) bool
}

var commodityTickers = map[string]bool{"GLD": true, "USO": true, "SLV": true}

var groupRules = []groupRule{
	{GroupIndia, func(inst models.Instrument, _ []string) bool {
		return strings.EqualFold(strings.TrimSpace(inst.Market), models.MarketIndia)
	}},
	// substring match: any tag containing "ai" counts
	{GroupAIChips, func(inst models.Instrument, tags []string) bool {
		return anyTag(tags, contains("ai")) || inst.Sector == "Semiconductors"
	}},
	{GroupMegaCap, func(_ models.Instrument, tags []string) bool {
		return anyTag(tags, contains("mega"))
	}},
	{GroupBonds, func(_ models.Instrument, tags []string) bool {
		return anyTag(tags, contains("bond"))
	}},
	{GroupCommodities, func(inst models.Instrument, tags []string) bool {
		return anyTag(tags, oneOf("gold", "oil", "commodities")) || commodityTickers[inst.Ticker]
	}},
	{GroupDefense, func(_ models.Instrument, tags []string) bool {
		return anyTag(tags, contains("defense"))
	}},
	{GroupLogistics, func(_ models.Instrument, tags []string) bool {
		return anyTag(tags, contains("logistics"))
	}},
	{GroupPharma, func(_ models.Instrument, tags []string) bool {
		return anyTag(tags, oneOf("pharma", "medtech", "tools", "insurance", "hospitals"))
	}},
	{"", func(inst models.Instrument, _ []string) bool {
		return strings.TrimSpace(inst.Sector) != ""
	}},
}

// Group classifies an instrument for presentation. The sector itself is the
// fallback label, and instruments without a sector land in Industrials.
func Group(inst models.Instrument) string {
	tags := make([]string, len(inst.Tags))
	for i, t := range inst.Tags {
		tags[i] = strings.ToLower(t)
	}

	for _, r := range groupRules {
		if !r.match(inst, tags) {
			continue
		}
		if r.label == "" {
			return strings.TrimSpace(inst.Sector)
		}
		return r.label
	}
	return GroupDefault
}

func anyTag(tags []string, pred func(string) bool) bool {
	for _, t := range tags {
		if pred(t) {
			return true
		}
	}
	return false
}

func contains(sub string) func(string) bool {
	return func(t string) bool { return strings.Contains(t, sub) }
}

func oneOf(values ...string) func(string) bool {
	return func(t string) bool {
		for _, v := range values {
			if t == v {
				return true
			}
		}
		return false
	}
}
