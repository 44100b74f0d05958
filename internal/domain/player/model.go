package player

import (
	"fmt"

	"github.com/riskibarqy/hoops-feed/internal/domain/statistic"
	"github.com/riskibarqy/hoops-feed/internal/domain/team"
)

const UnknownPosition = "Unknown"

// Player is a rostered athlete together with the statistics the feed carried for them.
type Player struct {
	ID           string                `json:"id" validate:"required"`
	Name         string                `json:"name"`
	Position     string                `json:"position" validate:"required"`
	JerseyNumber *int                  `json:"jerseyNumber,omitempty"`
	Height       *string               `json:"height,omitempty"`
	Weight       *int                  `json:"weight,omitempty"`
	Age          *int                  `json:"age,omitempty"`
	College      *string               `json:"college,omitempty"`
	PhotoURL     *string               `json:"photoUrl,omitempty"`
	Team         team.Team             `json:"team"`
	Statistics   []statistic.Statistic `json:"statistics" validate:"dive"`
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if err := p.Team.Validate(); err != nil {
		return fmt.Errorf("player %s: %w", p.ID, err)
	}

	return nil
}
