package team

import (
	"fmt"
	"strings"
)

// Team is a franchise as exposed to clients.
type Team struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Abbreviation  string   `json:"abbreviation" validate:"required"`
	LogoURL       *string  `json:"logoUrl,omitempty"`
	City          *string  `json:"city,omitempty"`
	Conference    *string  `json:"conference,omitempty"`
	Division      *string  `json:"division,omitempty"`
	Wins          *int     `json:"wins,omitempty"`
	Losses        *int     `json:"losses,omitempty"`
	WinPercentage *float64 `json:"winPercentage,omitempty"`
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Abbreviation == "" {
		return fmt.Errorf("team abbreviation is required")
	}

	return nil
}

// Abbreviation returns the alias when present, otherwise the upper-cased
// first three characters of the name.
func Abbreviation(alias *string, name string) string {
	if alias != nil && strings.TrimSpace(*alias) != "" {
		return *alias
	}
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// Unknown is the placeholder used when a player's team cannot be resolved.
func Unknown() Team {
	return Team{ID: "unknown", Name: "Unknown Team", Abbreviation: "UNK"}
}

// Index keys teams by ID.
func Index(items []Team) map[string]Team {
	out := make(map[string]Team, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}
