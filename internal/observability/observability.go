// Package observability starts the process-wide telemetry side channels:
// Uptrace traces and logs, Pyroscope profiles and the pprof listener.
package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/hoops-feed/internal/config"
	"github.com/riskibarqy/hoops-feed/internal/platform/logging"
)

// Runtime holds whatever telemetry Start enabled. The zero value is a valid
// no-op.
type Runtime struct {
	logger        *logging.Logger
	stopTracing   func(context.Context) error
	stopProfiling func() error
	pprof         *http.Server
}

func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	stopTracing, err := startUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("start uptrace: %w", err)
	}
	rt.stopTracing = stopTracing

	stopProfiling, err := startPyroscope(cfg, logger)
	if err != nil {
		_ = rt.Shutdown(context.Background())
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}
	rt.stopProfiling = stopProfiling

	if cfg.PprofEnabled {
		rt.pprof = startPprof(cfg.PprofAddr, logger)
	} else {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
	}

	return rt, nil
}

// Shutdown stops components in reverse start order so the final pprof and
// profiler logs still reach Uptrace.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	var errs []error
	if r.pprof != nil {
		if err := r.pprof.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop pprof: %w", err))
		} else if r.logger != nil {
			r.logger.Info("pprof server stopped")
		}
	}
	if r.stopProfiling != nil {
		if err := r.stopProfiling(); err != nil {
			errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
		}
	}
	if r.stopTracing != nil {
		if err := r.stopTracing(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop uptrace: %w", err))
		}
	}
	return errors.Join(errs...)
}
