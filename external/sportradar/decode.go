package sportradar

import (
	"fmt"
	"strconv"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

var (
	ErrMalformedPayload = crerr.New("malformed provider payload")
	ErrMissingField     = crerr.New("missing required field")
)

// DecodeError reports a payload that could not be turned into its raw shape.
type DecodeError struct {
	Endpoint Endpoint
	Field    string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: %v: %s", e.Endpoint, e.Err, e.Field)
	}
	return fmt.Sprintf("decode %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func malformed(endpoint Endpoint, err error) error {
	return &DecodeError{
		Endpoint: endpoint,
		Err:      crerr.Mark(crerr.Wrap(err, "unmarshal"), ErrMalformedPayload),
	}
}

func missing(endpoint Endpoint, field string) error {
	return &DecodeError{Endpoint: endpoint, Field: field, Err: ErrMissingField}
}

func decodeInto[T any](endpoint Endpoint, raw []byte) (T, error) {
	var out T
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return out, malformed(endpoint, err)
	}
	return out, nil
}

// Decode parses raw into the shape registered for endpoint.
func Decode(endpoint Endpoint, raw []byte) (any, error) {
	switch endpoint {
	case EndpointTeams:
		return DecodeTeams(raw)
	case EndpointRoster:
		return DecodeRoster(endpoint, raw)
	case EndpointPlayerProfile:
		return DecodePlayerProfile(raw)
	case EndpointGameSummary:
		return DecodeGameSummary(raw)
	case EndpointBoxscore:
		return DecodeBoxscore(raw)
	case EndpointSchedule:
		return DecodeSchedule(raw)
	case EndpointLeaders:
		return DecodeLeagueLeaders(raw)
	case EndpointStandings:
		return DecodeStandings(raw)
	case EndpointHierarchy:
		return DecodeHierarchy(raw)
	case EndpointInjuries:
		return DecodeInjuries(endpoint, raw)
	case EndpointDailyChanges:
		return DecodeDailyChanges(raw)
	default:
		return nil, &DecodeError{Endpoint: endpoint, Err: crerr.Newf("unknown endpoint %q", endpoint)}
	}
}

func DecodeTeams(raw []byte) (TeamsResponse, error) {
	out, err := decodeInto[TeamsResponse](EndpointTeams, raw)
	if err != nil {
		return out, err
	}
	for i, item := range out.Teams {
		if item.ID == "" {
			return out, missing(EndpointTeams, indexed("teams", i, "id"))
		}
	}
	return out, nil
}

func DecodeRoster(endpoint Endpoint, raw []byte) (Roster, error) {
	out, err := decodeInto[Roster](endpoint, raw)
	if err != nil {
		return out, err
	}
	for i, item := range out.Players {
		if item.ID == "" {
			return out, missing(endpoint, indexed("players", i, "id"))
		}
	}
	return out, nil
}

func DecodePlayerProfile(raw []byte) (PlayerProfile, error) {
	out, err := decodeInto[PlayerProfile](EndpointPlayerProfile, raw)
	if err != nil {
		return out, err
	}
	if out.ID == "" {
		return out, missing(EndpointPlayerProfile, "id")
	}
	return out, nil
}

func DecodeGameSummary(raw []byte) (GameSummary, error) {
	out, err := decodeInto[GameSummary](EndpointGameSummary, raw)
	if err != nil {
		return out, err
	}
	if out.ID == "" {
		return out, missing(EndpointGameSummary, "id")
	}
	return out, nil
}

func DecodeBoxscore(raw []byte) (Boxscore, error) {
	return decodeInto[Boxscore](EndpointBoxscore, raw)
}

func DecodeSchedule(raw []byte) (Schedule, error) {
	out, err := decodeInto[Schedule](EndpointSchedule, raw)
	if err != nil {
		return out, err
	}
	for i, item := range out.Games {
		if item.ID == "" {
			return out, missing(EndpointSchedule, indexed("games", i, "id"))
		}
	}
	return out, nil
}

func DecodeLeagueLeaders(raw []byte) (LeagueLeaders, error) {
	return decodeInto[LeagueLeaders](EndpointLeaders, raw)
}

func DecodeStandings(raw []byte) (Standings, error) {
	out, err := decodeInto[Standings](EndpointStandings, raw)
	if err != nil {
		return out, err
	}
	for i, item := range out.Teams {
		if item.Team != nil && item.Team.ID == "" {
			return out, missing(EndpointStandings, indexed("teams", i, "team.id"))
		}
	}
	return out, nil
}

func DecodeHierarchy(raw []byte) (Hierarchy, error) {
	out, err := decodeInto[Hierarchy](EndpointHierarchy, raw)
	if err != nil {
		return out, err
	}
	for i, conference := range out.Conferences {
		for j, item := range conference.Teams {
			if item.ID == "" {
				return out, missing(EndpointHierarchy, fmt.Sprintf("conferences[%d].teams[%d].id", i, j))
			}
		}
	}
	return out, nil
}

func DecodeInjuries(endpoint Endpoint, raw []byte) (InjuriesResponse, error) {
	out, err := decodeInto[InjuriesResponse](endpoint, raw)
	if err != nil {
		return out, err
	}
	for i, t := range out.Teams {
		if t.ID == "" {
			return out, missing(endpoint, indexed("teams", i, "id"))
		}
		for j, p := range t.Players {
			if p.ID == "" {
				return out, missing(endpoint, fmt.Sprintf("teams[%d].players[%d].id", i, j))
			}
			for k, item := range p.Injuries {
				if item.ID == "" {
					return out, missing(endpoint, fmt.Sprintf("teams[%d].players[%d].injuries[%d].id", i, j, k))
				}
			}
		}
	}
	return out, nil
}

func DecodeDailyChanges(raw []byte) (DailyChanges, error) {
	return decodeInto[DailyChanges](EndpointDailyChanges, raw)
}

func indexed(list string, i int, field string) string {
	return list + "[" + strconv.Itoa(i) + "]." + field
}
