package normalize

import "github.com/riskibarqy/hoops-feed/external/sportradar"

// sideScore is everything the feed may carry about one team's score.
type sideScore struct {
	Points  *int
	Stats   *sportradar.TeamGameStatistics
	Scoring []sportradar.ScoringPeriod
}

type scoreSource struct {
	name string
	get  func(sideScore) *int
}

// scoreSources is the ordered fallback chain; the first present value wins.
var scoreSources = []scoreSource{
	{name: "points", get: func(s sideScore) *int { return s.Points }},
	{name: "statistics.points", get: func(s sideScore) *int { return statField(s, func(st *sportradar.TeamGameStatistics) *int { return st.Points }) }},
	{name: "statistics.total_points", get: func(s sideScore) *int { return statField(s, func(st *sportradar.TeamGameStatistics) *int { return st.TotalPoints }) }},
	{name: "statistics.team_points", get: func(s sideScore) *int { return statField(s, func(st *sportradar.TeamGameStatistics) *int { return st.TeamPoints }) }},
}

func statField(s sideScore, pick func(*sportradar.TeamGameStatistics) *int) *int {
	if s.Stats == nil {
		return nil
	}
	return pick(s.Stats)
}

// resolveScore walks the score chain. When no source is present it falls
// back to the sum of scoring periods, used only when positive.
func resolveScore(s sideScore) (int, string) {
	for _, source := range scoreSources {
		if v := source.get(s); v != nil {
			return *v, source.name
		}
	}
	if sum := sumPeriods(s.Scoring); sum > 0 {
		return sum, "scoring"
	}
	return 0, ""
}

// reattemptScore is used for finished games that resolved to zero. It takes
// the first positive statistics field, then a positive period sum.
func reattemptScore(s sideScore) int {
	for _, source := range scoreSources[1:] {
		if v := source.get(s); v != nil && *v > 0 {
			return *v
		}
	}
	if sum := sumPeriods(s.Scoring); sum > 0 {
		return sum
	}
	return 0
}

func sumPeriods(periods []sportradar.ScoringPeriod) int {
	total := 0
	for _, period := range periods {
		if period.Points != nil {
			total += *period.Points
		}
	}
	return total
}
