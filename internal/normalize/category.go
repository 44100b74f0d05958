package normalize

import (
	"strings"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/statistic"
)

type categoryRule struct {
	category statistic.Category
	match    func(name string) bool
}

func has(name string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(name, needle) {
			return true
		}
	}
	return false
}

func isPercentage(name string) bool {
	return has(name, "pct", "percentage")
}

func isBlock(name string) bool {
	return has(name, "block") && !has(name, "blocked_att")
}

// categoryRules classify leaderboard category names. Order matters: the
// first matching rule wins.
var categoryRules = []categoryRule{
	{category: statistic.CategoryScoring, match: func(n string) bool { return has(n, "point") && !isPercentage(n) }},
	{category: statistic.CategoryRebounding, match: func(n string) bool { return has(n, "rebound") && !isPercentage(n) }},
	{category: statistic.CategoryAssists, match: func(n string) bool { return has(n, "assist") }},
	{category: statistic.CategoryDefense, match: func(n string) bool { return has(n, "steal") }},
	{category: statistic.CategoryDefense, match: isBlock},
	{category: statistic.CategoryEfficiency, match: func(n string) bool { return has(n, "efficiency") }},
	{category: statistic.CategoryShooting, match: isPercentage},
	{category: statistic.CategoryTurnovers, match: func(n string) bool { return has(n, "turnover") }},
}

// Classify maps a leaderboard category name to a canonical category.
// Unmatched names are scoring.
func Classify(name string) statistic.Category {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, rule := range categoryRules {
		if rule.match(lower) {
			return rule.category
		}
	}
	return statistic.CategoryScoring
}

// shotFamily is a shooting family with its made and attempted accessors.
type shotFamily struct {
	key  string
	made func(*sportradar.LeaderAverage) *float64
	att  func(*sportradar.LeaderAverage) *float64
}

var shotFamilies = []shotFamily{
	{
		key:  "field_goal",
		made: func(a *sportradar.LeaderAverage) *float64 { return a.FieldGoalsMade },
		att:  func(a *sportradar.LeaderAverage) *float64 { return a.FieldGoalsAtt },
	},
	{
		key:  "three_point",
		made: func(a *sportradar.LeaderAverage) *float64 { return a.ThreePointsMade },
		att:  func(a *sportradar.LeaderAverage) *float64 { return a.ThreePointsAtt },
	},
	{
		key:  "free_throw",
		made: func(a *sportradar.LeaderAverage) *float64 { return a.FreeThrowsMade },
		att:  func(a *sportradar.LeaderAverage) *float64 { return a.FreeThrowsAtt },
	},
	{
		key:  "two_point",
		made: func(a *sportradar.LeaderAverage) *float64 { return a.TwoPointsMade },
		att:  func(a *sportradar.LeaderAverage) *float64 { return a.TwoPointsAtt },
	},
}

func familyOf(name string) (shotFamily, bool) {
	for _, family := range shotFamilies {
		if strings.Contains(name, family.key) {
			return family, true
		}
	}
	return shotFamily{}, false
}

type valueRule struct {
	match func(name string) bool
	value func(name string, avg *sportradar.LeaderAverage) (float64, bool)
}

func pick(get func(*sportradar.LeaderAverage) *float64) func(string, *sportradar.LeaderAverage) (float64, bool) {
	return func(_ string, avg *sportradar.LeaderAverage) (float64, bool) {
		return floatOr(get(avg)), true
	}
}

// valueRules select which per-game average a category name reads. Order
// matters and mirrors categoryRules where the names overlap.
var valueRules = []valueRule{
	{match: func(n string) bool { return n == "points" || n == "point" }, value: pick(func(a *sportradar.LeaderAverage) *float64 { return a.Points })},
	{match: func(n string) bool { return has(n, "rebound") }, value: pick(func(a *sportradar.LeaderAverage) *float64 { return a.Rebounds })},
	{match: func(n string) bool { return has(n, "assist") }, value: pick(func(a *sportradar.LeaderAverage) *float64 { return a.Assists })},
	{match: func(n string) bool { return has(n, "steal") }, value: pick(func(a *sportradar.LeaderAverage) *float64 { return a.Steals })},
	{match: isBlock, value: pick(func(a *sportradar.LeaderAverage) *float64 { return a.Blocks })},
	{match: func(n string) bool { return has(n, "turnover") }, value: pick(func(a *sportradar.LeaderAverage) *float64 { return a.Turnovers })},
	{match: func(n string) bool { return has(n, "efficiency") }, value: pick(func(a *sportradar.LeaderAverage) *float64 { return a.Efficiency })},
	{
		match: func(n string) bool {
			_, ok := familyOf(n)
			return ok && isPercentage(n)
		},
		value: func(n string, avg *sportradar.LeaderAverage) (float64, bool) {
			family, _ := familyOf(n)
			made, att := family.made(avg), family.att(avg)
			if made == nil || att == nil || *att <= 0 {
				return 0, true
			}
			return *made / *att * 100, true
		},
	},
	{
		match: func(n string) bool { return has(n, "_made") },
		value: func(n string, avg *sportradar.LeaderAverage) (float64, bool) {
			family, ok := familyOf(n)
			if !ok {
				return 0, false
			}
			return floatOr(family.made(avg)), true
		},
	},
	{
		match: func(n string) bool { return has(n, "_att") && !has(n, "blocked_att") },
		value: func(n string, avg *sportradar.LeaderAverage) (float64, bool) {
			family, ok := familyOf(n)
			if !ok {
				return 0, false
			}
			return floatOr(family.att(avg)), true
		},
	},
	{match: func(n string) bool { return has(n, "minute") }, value: pick(func(a *sportradar.LeaderAverage) *float64 { return a.Minutes })},
}

// ExtractValue reads the per-game average a leaderboard category refers to.
// Names without a more specific match read points.
func ExtractValue(name string, avg *sportradar.LeaderAverage) float64 {
	if avg == nil {
		return 0
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, rule := range valueRules {
		if !rule.match(lower) {
			continue
		}
		if v, ok := rule.value(lower, avg); ok {
			return v
		}
	}
	return floatOr(avg.Points)
}

var shootingDisplayNames = map[string]string{
	"field_goal":  "Field Goal %",
	"three_point": "3PT %",
	"free_throw":  "FT %",
	"two_point":   "2PT %",
}

// UnitAndDisplayName returns the unit and label shown for a category name.
func UnitAndDisplayName(category statistic.Category, name string) (*statistic.Unit, string) {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch category {
	case statistic.CategoryScoring:
		return statistic.UnitPtr(statistic.UnitPoints), "Points Per Game"
	case statistic.CategoryRebounding:
		return statistic.UnitPtr(statistic.UnitRebounds), "Rebounds Per Game"
	case statistic.CategoryAssists:
		return statistic.UnitPtr(statistic.UnitAssists), "Assists Per Game"
	case statistic.CategoryDefense:
		if has(lower, "block") && !has(lower, "steal") {
			return statistic.UnitPtr(statistic.UnitBlocks), "Blocks Per Game"
		}
		return statistic.UnitPtr(statistic.UnitSteals), "Steals Per Game"
	case statistic.CategoryEfficiency:
		return nil, "Efficiency"
	case statistic.CategoryShooting:
		display := shootingDisplayNames["field_goal"]
		if family, ok := familyOf(lower); ok {
			display = shootingDisplayNames[family.key]
		}
		return statistic.UnitPtr(statistic.UnitPercentage), display
	case statistic.CategoryTurnovers:
		return nil, "Turnovers Per Game"
	default:
		return statistic.UnitPtr(statistic.UnitPoints), "Points Per Game"
	}
}

// CategoryFor classifies a free-form roster statistic name or category
// label. Unmatched labels are efficiency.
func CategoryFor(label string) statistic.Category {
	lower := strings.ToLower(strings.TrimSpace(label))
	switch {
	case has(lower, "point", "scor"):
		return statistic.CategoryScoring
	case has(lower, "rebound"):
		return statistic.CategoryRebounding
	case has(lower, "assist"):
		return statistic.CategoryAssists
	case has(lower, "steal", "block"):
		return statistic.CategoryDefense
	case has(lower, "percentage", "shot"):
		return statistic.CategoryShooting
	case has(lower, "turnover"):
		return statistic.CategoryTurnovers
	default:
		return statistic.CategoryEfficiency
	}
}

func floatOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
