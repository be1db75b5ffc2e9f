package mock

import (
	"context"

	"github.com/recipeclip/recipeclip"
)

var _ recipeclip.HealthService = (*HealthService)(nil)

// HealthService is a mock implementation of recipeclip.HealthService.
type HealthService struct {
	HealthFn func(ctx context.Context) (*recipeclip.StoreHealth, error)
}

func (s *HealthService) Health(ctx context.Context) (*recipeclip.StoreHealth, error) {
	return s.HealthFn(ctx)
}
