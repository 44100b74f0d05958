package leader

import "github.com/riskibarqy/hoops-feed/internal/domain/player"

// Entry is one ranked player inside a leaderboard category. The player
// carries exactly one statistic: the value they are ranked on.
type Entry struct {
	Category string        `json:"category"`
	Player   player.Player `json:"player"`
}
