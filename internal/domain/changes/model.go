package changes

// Daily lists the entity IDs the provider reported as changed on one day.
type Daily struct {
	Date      string   `json:"date"`
	TeamIDs   []string `json:"teamIds"`
	PlayerIDs []string `json:"playerIds"`
	GameIDs   []string `json:"gameIds"`
}

func (d Daily) Empty() bool {
	return len(d.TeamIDs) == 0 && len(d.PlayerIDs) == 0 && len(d.GameIDs) == 0
}
