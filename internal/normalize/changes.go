package normalize

import (
	"github.com/riskibarqy/hoops-feed/external/sportradar"
	"github.com/riskibarqy/hoops-feed/internal/domain/changes"
)

func (m *Mapper) MapDailyChanges(src sportradar.DailyChanges) changes.Daily {
	return changes.Daily{
		Date:      strOr(src.Date, ""),
		TeamIDs:   orEmpty(src.Teams),
		PlayerIDs: orEmpty(src.Players),
		GameIDs:   orEmpty(src.Games),
	}
}

func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
