package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/game"
)

const quarterPeriodType = "quarter"

// AlignQuarters zips both sides' quarter periods. Overtime-style periods
// are dropped. The result is nil when either side is missing, when the
// quarter counts differ, or when there are no quarters at all.
func AlignQuarters(home, away []sportradar.ScoringPeriod) []game.QuarterScore {
	if home == nil || away == nil {
		return nil
	}
	homeQuarters := quarterPeriods(home)
	awayQuarters := quarterPeriods(away)
	if len(homeQuarters) != len(awayQuarters) || len(homeQuarters) == 0 {
		return nil
	}

	out := make([]game.QuarterScore, 0, len(homeQuarters))
	for i, homePeriod := range homeQuarters {
		number := i + 1
		if homePeriod.Number != nil {
			number = *homePeriod.Number
		}
		out = append(out, game.QuarterScore{
			ID:            fmt.Sprintf("Q%d", number),
			HomeScore:     intOr(homePeriod.Points),
			AwayScore:     intOr(awayQuarters[i].Points),
			QuarterNumber: number,
		})
	}
	return out
}

func quarterPeriods(periods []sportradar.ScoringPeriod) []sportradar.ScoringPeriod {
	out := make([]sportradar.ScoringPeriod, 0, len(periods))
	for _, period := range periods {
		if period.Type != nil && strings.EqualFold(strings.TrimSpace(*period.Type), quarterPeriodType) {
			out = append(out, period)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return intOr(out[i].Number) < intOr(out[j].Number)
	})
	return out
}
