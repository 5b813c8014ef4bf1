package usecase

import (
	"context"

	"github.com/aalvaropc/conversor/internal/ports"
)

type CheckService struct {
	health ports.HealthChecker
}

func NewCheckService(h ports.HealthChecker) *CheckService {
	return &CheckService{health: h}
}

func (uc *CheckService) Execute(ctx context.Context) (string, error) {
	return uc.health.Health(ctx)
}
