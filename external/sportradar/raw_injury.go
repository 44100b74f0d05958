package sportradar

type InjuriesResponse struct {
	League *League        `json:"league"`
	Teams  []TeamInjuries `json:"teams"`
}

type TeamInjuries struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	FranchiseID *string          `json:"franchise_id"`
	Players     []PlayerInjuries `json:"players"`
}

type PlayerInjuries struct {
	ID              string   `json:"id"`
	FullName        string   `json:"full_name"`
	FirstName       *string  `json:"first_name"`
	LastName        *string  `json:"last_name"`
	Position        *string  `json:"position"`
	PrimaryPosition *string  `json:"primary_position"`
	JerseyNumber    Text     `json:"jersey_number"`
	Injuries        []Injury `json:"injuries"`
}

type Injury struct {
	ID         string  `json:"id"`
	Comment    *string `json:"comment"`
	Desc       *string `json:"desc"`
	Status     string  `json:"status"`
	StartDate  *string `json:"start_date"`
	UpdateDate *string `json:"update_date"`
}

type DailyChanges struct {
	Date       *string  `json:"date"`
	Teams      []string `json:"teams"`
	Players    []string `json:"players"`
	Games      []string `json:"games"`
	Standings  *bool    `json:"standings"`
	Statistics *bool    `json:"statistics"`
}
