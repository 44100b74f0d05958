package normalize

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// Kind is the closed set of mapping failure classes.
type Kind string

const (
	KindMissingRequiredField  Kind = "missing_required_field"
	KindMissingTeam           Kind = "missing_team"
	KindMissingPlayer         Kind = "missing_player"
	KindInvalidDate           Kind = "invalid_date"
	KindInvalidStatus         Kind = "invalid_status"
	KindInvalidFormat         Kind = "invalid_format"
	KindTeamMappingFailed     Kind = "team_mapping_failed"
	KindPlayerMappingFailed   Kind = "player_mapping_failed"
	KindGameMappingFailed     Kind = "game_mapping_failed"
	KindBoxscoreMappingFailed Kind = "boxscore_mapping_failed"
	KindDataInconsistency     Kind = "data_inconsistency"
	KindUnexpectedStructure   Kind = "unexpected_structure"
)

// Sentinels for errors.Is checks. They match any MappingError of the same kind.
var (
	ErrMissingRequiredField  = &MappingError{Kind: KindMissingRequiredField}
	ErrMissingTeam           = &MappingError{Kind: KindMissingTeam}
	ErrMissingPlayer         = &MappingError{Kind: KindMissingPlayer}
	ErrInvalidDate           = &MappingError{Kind: KindInvalidDate}
	ErrInvalidStatus         = &MappingError{Kind: KindInvalidStatus}
	ErrInvalidFormat         = &MappingError{Kind: KindInvalidFormat}
	ErrTeamMappingFailed     = &MappingError{Kind: KindTeamMappingFailed}
	ErrPlayerMappingFailed   = &MappingError{Kind: KindPlayerMappingFailed}
	ErrGameMappingFailed     = &MappingError{Kind: KindGameMappingFailed}
	ErrBoxscoreMappingFailed = &MappingError{Kind: KindBoxscoreMappingFailed}
	ErrDataInconsistency     = &MappingError{Kind: KindDataInconsistency}
	ErrUnexpectedStructure   = &MappingError{Kind: KindUnexpectedStructure}
)

// MappingError is a classified failure to turn a raw shape into a canonical
// value. Subject is the field, entity id or offending value; Context is where
// it happened, the reason, or the expected structure depending on Kind.
type MappingError struct {
	Kind    Kind
	Subject string
	Context string
	Cause   error
}

func (e *MappingError) Error() string {
	switch e.Kind {
	case KindMissingRequiredField:
		if e.Context != "" {
			return fmt.Sprintf("Missing required field '%s' in %s", e.Subject, e.Context)
		}
		return fmt.Sprintf("Missing required field: %s", e.Subject)
	case KindMissingTeam:
		if e.Context != "" {
			return fmt.Sprintf("Team '%s' not found in teams dictionary for game '%s'", e.Subject, e.Context)
		}
		return fmt.Sprintf("Team '%s' not found in teams dictionary", e.Subject)
	case KindMissingPlayer:
		return fmt.Sprintf("Player '%s' not found in %s", e.Subject, e.Context)
	case KindInvalidDate:
		if e.Context != "" {
			return fmt.Sprintf("Invalid date format '%s' in %s", e.Subject, e.Context)
		}
		return fmt.Sprintf("Invalid date format: %s", e.Subject)
	case KindInvalidStatus:
		return fmt.Sprintf("Invalid status '%s' in %s", e.Subject, e.Context)
	case KindInvalidFormat:
		return fmt.Sprintf("Invalid format '%s' in %s", e.Subject, e.Context)
	case KindTeamMappingFailed:
		return fmt.Sprintf("Failed to map team '%s': %s", e.Subject, e.Context)
	case KindPlayerMappingFailed:
		return fmt.Sprintf("Failed to map player '%s': %s", e.Subject, e.Context)
	case KindGameMappingFailed:
		if e.Subject != "" {
			return fmt.Sprintf("Failed to map game '%s': %s", e.Subject, e.Context)
		}
		return fmt.Sprintf("Failed to map game: %s", e.Context)
	case KindBoxscoreMappingFailed:
		return fmt.Sprintf("Failed to map boxscore for game '%s': %s", e.Subject, e.Context)
	case KindDataInconsistency:
		return fmt.Sprintf("Data inconsistency: %s. Details: %s", e.Subject, e.Context)
	case KindUnexpectedStructure:
		return fmt.Sprintf("Unexpected structure '%s'. Expected: %s", e.Subject, e.Context)
	default:
		return fmt.Sprintf("mapping error %s: %s %s", e.Kind, e.Subject, e.Context)
	}
}

func (e *MappingError) Unwrap() error {
	return e.Cause
}

// Is matches sentinels by kind.
func (e *MappingError) Is(target error) bool {
	other, ok := target.(*MappingError)
	if !ok {
		return false
	}
	return other.Subject == "" && other.Context == "" && other.Kind == e.Kind
}

// Recovery suggests what an operator can check for this class of failure.
func (e *MappingError) Recovery() string {
	switch e.Kind {
	case KindMissingTeam:
		return "refresh the teams list before mapping games"
	case KindInvalidDate:
		return "verify the provider date uses ISO-8601"
	case KindInvalidStatus:
		return "verify the status value matches a documented provider status"
	case KindMissingPlayer:
		return "verify the player reference is present in the feed"
	case KindInvalidFormat:
		return "verify the provider value format for this field"
	case KindMissingRequiredField, KindUnexpectedStructure:
		return "verify the provider response shape for this endpoint"
	default:
		return "retry the request or inspect the captured payload"
	}
}

// KindOf reports the kind of the first MappingError in err's chain.
func KindOf(err error) (Kind, bool) {
	var mapped *MappingError
	if crerr.As(err, &mapped) {
		return mapped.Kind, true
	}
	return "", false
}

func MissingRequiredField(field, context string) *MappingError {
	return &MappingError{Kind: KindMissingRequiredField, Subject: field, Context: context}
}

func MissingTeam(teamID, gameID string) *MappingError {
	return &MappingError{Kind: KindMissingTeam, Subject: teamID, Context: gameID}
}

func MissingPlayer(playerID, context string) *MappingError {
	return &MappingError{Kind: KindMissingPlayer, Subject: playerID, Context: context}
}

func InvalidDate(value, context string) *MappingError {
	return &MappingError{Kind: KindInvalidDate, Subject: value, Context: context}
}

func InvalidStatus(value, context string) *MappingError {
	return &MappingError{Kind: KindInvalidStatus, Subject: value, Context: context}
}

func InvalidFormat(value, context string) *MappingError {
	return &MappingError{Kind: KindInvalidFormat, Subject: value, Context: context}
}

func TeamMappingFailed(teamID string, cause error) *MappingError {
	return &MappingError{Kind: KindTeamMappingFailed, Subject: teamID, Context: reason(cause), Cause: cause}
}

func PlayerMappingFailed(playerID string, cause error) *MappingError {
	return &MappingError{Kind: KindPlayerMappingFailed, Subject: playerID, Context: reason(cause), Cause: cause}
}

func GameMappingFailed(gameID, why string) *MappingError {
	return &MappingError{Kind: KindGameMappingFailed, Subject: gameID, Context: why}
}

func BoxscoreMappingFailed(gameID string, cause error) *MappingError {
	return &MappingError{Kind: KindBoxscoreMappingFailed, Subject: gameID, Context: reason(cause), Cause: cause}
}

func DataInconsistency(description, details string) *MappingError {
	return &MappingError{Kind: KindDataInconsistency, Subject: description, Context: details}
}

func UnexpectedStructure(actual, expected string) *MappingError {
	return &MappingError{Kind: KindUnexpectedStructure, Subject: actual, Context: expected}
}

func reason(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// wrapGameError passes classified item-level errors through and wraps
// anything else as a game mapping failure.
func wrapGameError(gameID string, err error) error {
	if err == nil {
		return nil
	}
	if kind, ok := KindOf(err); ok {
		switch kind {
		case KindMissingRequiredField, KindMissingTeam, KindInvalidDate, KindInvalidStatus, KindGameMappingFailed:
			return err
		}
	}
	wrapped := GameMappingFailed(gameID, err.Error())
	wrapped.Cause = err
	return wrapped
}
