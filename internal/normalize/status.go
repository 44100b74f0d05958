package normalize

import (
	"strings"
	"time"

	"github.com/riskibarqy/hoops-feed/internal/domain/game"
)

type statusRule struct {
	status  game.Status
	needles []string
}

// statusRules is evaluated in order; the first rule with a matching
// substring wins.
var statusRules = []statusRule{
	{status: game.StatusFinished, needles: []string{"closed", "complete", "final"}},
	{status: game.StatusLive, needles: []string{"live", "inprogress"}},
	{status: game.StatusPostponed, needles: []string{"postponed"}},
	{status: game.StatusCancelled, needles: []string{"cancelled", "canceled"}},
}

// ClassifyStatus maps a provider status string onto the canonical status.
// A missing or unrecognised value is scheduled.
func ClassifyStatus(raw *string) game.Status {
	if raw == nil {
		return game.StatusScheduled
	}
	value := strings.ToLower(strings.TrimSpace(*raw))
	for _, rule := range statusRules {
		for _, needle := range rule.needles {
			if strings.Contains(value, needle) {
				return rule.status
			}
		}
	}
	return game.StatusScheduled
}

// InferStatus upgrades a scheduled game to finished when its start time has
// passed and either side has already scored.
func InferStatus(status game.Status, startsAt, now time.Time, homeScore, awayScore int) game.Status {
	if status != game.StatusScheduled {
		return status
	}
	if !startsAt.Before(now) {
		return status
	}
	if homeScore > 0 || awayScore > 0 {
		return game.StatusFinished
	}
	return status
}
