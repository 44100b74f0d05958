// Package normalize turns decoded provider shapes into canonical domain
// values. Every mapping is pure given its inputs and the injected clock.
package normalize

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

type MapperConfig struct {
	Logger *logging.Logger
	Now    func() time.Time
	// Pool spreads batch mapping across workers. It is owned by the caller.
	Pool *ants.Pool
}

type Mapper struct {
	logger   *logging.Logger
	now      func() time.Time
	pool     *ants.Pool
	validate *validator.Validate
}

func NewMapper(cfg MapperConfig) *Mapper {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Mapper{
		logger:   logger,
		now:      now,
		pool:     cfg.Pool,
		validate: validator.New(),
	}
}

type validatable interface {
	Validate() error
}

// check validates a canonical value against its struct tags, then against
// the domain type's own invariants.
func (m *Mapper) check(value any, subject string) error {
	if err := m.validate.Struct(value); err != nil {
		return UnexpectedStructure(subject, err.Error())
	}
	if v, ok := value.(validatable); ok {
		if err := v.Validate(); err != nil {
			return UnexpectedStructure(subject, err.Error())
		}
	}
	return nil
}

func strOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func nonBlank(v *string) bool {
	return v != nil && *v != ""
}
