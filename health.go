package recipeclip

import "context"

// StoreHealth reports storage integrity for the health endpoint.
type StoreHealth struct {
	OK          bool   `json:"ok"`
	Integrity   string `json:"integrity"`
	RecipeCount int    `json:"recipe_count"`
}

// HealthService reports on the health of the backing store.
type HealthService interface {
	Health(ctx context.Context) (*StoreHealth, error)
}
