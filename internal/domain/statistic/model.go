package statistic

// Category groups statistics the way leaderboards and profiles present them.
type Category string

const (
	CategoryScoring    Category = "scoring"
	CategoryRebounding Category = "rebounding"
	CategoryAssists    Category = "assists"
	CategoryDefense    Category = "defense"
	CategoryEfficiency Category = "efficiency"
	CategoryShooting   Category = "shooting"
	CategoryTurnovers  Category = "turnovers"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryScoring,
	CategoryRebounding,
	CategoryAssists,
	CategoryDefense,
	CategoryEfficiency,
	CategoryShooting,
	CategoryTurnovers,
}

type Unit string

const (
	UnitPoints     Unit = "points"
	UnitRebounds   Unit = "rebounds"
	UnitAssists    Unit = "assists"
	UnitSteals     Unit = "steals"
	UnitBlocks     Unit = "blocks"
	UnitPercentage Unit = "percentage"
)

// Statistic is one named value attached to a player.
type Statistic struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Value       float64  `json:"value"`
	Category    Category `json:"category" validate:"required"`
	Unit        *Unit    `json:"unit,omitempty"`
	Season      *string  `json:"season,omitempty"`
	GamesPlayed *int     `json:"gamesPlayed,omitempty"`
}

func UnitPtr(u Unit) *Unit {
	return &u
}
