package sportradar

// Player is the roster/players-list shape.
type Player struct {
	ID           string      `json:"id"`
	FullName     *string     `json:"full_name"`
	FirstName    *string     `json:"first_name"`
	LastName     *string     `json:"last_name"`
	Position     *string     `json:"position"`
	JerseyNumber Text        `json:"jersey_number"`
	Height       Text        `json:"height"`
	Weight       Text        `json:"weight"`
	Age          Number      `json:"age"`
	BirthDate    *string     `json:"birth_date"`
	BirthPlace   *string     `json:"birth_place"`
	College      *string     `json:"college"`
	Photo        *string     `json:"photo"`
	Team         *TeamRef    `json:"team"`
	TeamID       *string     `json:"team_id"`
	Statistics   []Statistic `json:"statistics"`
	Averages     *Averages   `json:"averages"`
}

// Statistic is a free-form named statistic attached to a roster player.
type Statistic struct {
	Name        *string `json:"name"`
	Value       *Number `json:"value"`
	Category    *string `json:"category"`
	Unit        *string `json:"unit"`
	Season      *string `json:"season"`
	GamesPlayed *int    `json:"gamesPlayed"`
}

// Averages carries per-game values with camelCase keys.
type Averages struct {
	Points                 *float64 `json:"points"`
	Rebounds               *float64 `json:"rebounds"`
	Assists                *float64 `json:"assists"`
	Steals                 *float64 `json:"steals"`
	Blocks                 *float64 `json:"blocks"`
	FieldGoalsMade         *float64 `json:"fieldGoalsMade"`
	FieldGoalsAttempted    *float64 `json:"fieldGoalsAttempted"`
	FieldGoalPercentage    *float64 `json:"fieldGoalPercentage"`
	ThreePointersMade      *float64 `json:"threePointersMade"`
	ThreePointersAttempted *float64 `json:"threePointersAttempted"`
	ThreePointPercentage   *float64 `json:"threePointPercentage"`
	FreeThrowsMade         *float64 `json:"freeThrowsMade"`
	FreeThrowsAttempted    *float64 `json:"freeThrowsAttempted"`
	FreeThrowPercentage    *float64 `json:"freeThrowPercentage"`
	GamesPlayed            *int     `json:"gamesPlayed"`
}

type PlayerProfile struct {
	ID              string            `json:"id"`
	Status          *string           `json:"status"`
	FullName        *string           `json:"full_name"`
	FirstName       *string           `json:"first_name"`
	LastName        *string           `json:"last_name"`
	AbbrName        *string           `json:"abbr_name"`
	Height          Number            `json:"height"`
	Weight          Number            `json:"weight"`
	Position        *string           `json:"position"`
	PrimaryPosition *string           `json:"primary_position"`
	JerseyNumber    Text              `json:"jersey_number"`
	College         *string           `json:"college"`
	HighSchool      *string           `json:"high_school"`
	BirthPlace      *string           `json:"birth_place"`
	Birthdate       *string           `json:"birthdate"`
	Updated         *string           `json:"updated"`
	League          *League           `json:"league"`
	Team            *TeamRef          `json:"team"`
	References      []PlayerReference `json:"references"`
	Seasons         []PlayerSeason    `json:"seasons"`
}

type PlayerReference struct {
	SourceID *string `json:"source_id"`
	Scope    *string `json:"scope"`
	IDType   *string `json:"id_type"`
}

type PlayerSeason struct {
	ID    *string            `json:"id"`
	Year  *int               `json:"year"`
	Type  *string            `json:"type"`
	Teams []PlayerSeasonTeam `json:"teams"`
}

type PlayerSeasonTeam struct {
	ID      *string          `json:"id"`
	Name    *string          `json:"name"`
	Alias   *string          `json:"alias"`
	Total   SeasonStatistics `json:"total"`
	Average SeasonStatistics `json:"average"`
}
