package usecase

import (
	"context"
	"time"

	"go-marketplace-backend/internal/domain"
)

// Pinger is anything that can report whether a backend answers
type Pinger func(ctx context.Context) error

type healthUsecase struct {
	checks map[string]Pinger
}

// NewHealthUsecase builds a health check over named dependencies. A nil
// Pinger marks a dependency that is not configured.
func NewHealthUsecase(checks map[string]Pinger) domain.HealthUsecase {
	return &healthUsecase{checks: checks}
}

// Check pings every dependency. The bool is false when any configured one fails.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	healthy := true
	for name, ping := range u.checks {
		switch {
		case ping == nil:
			status[name] = "disabled"
		case ping(ctx) != nil:
			status[name] = "down"
			healthy = false
		default:
			status[name] = "up"
		}
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
