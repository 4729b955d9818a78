package ports

import (
	"context"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

// FraudRepository reads the imported fraud dataset.
type FraudRepository interface {
	FindByRegion(ctx context.Context, city, district, neighborhood string) ([]domain.FraudCase, error)
	FindStatsByYear(ctx context.Context, year int) ([]domain.FraudStat, error)
}

type FraudService interface {
	CasesByRegion(ctx context.Context, city, district, neighborhood string) ([]domain.FraudCase, error)
	StatsByYear(ctx context.Context, year int) ([]domain.FraudStat, error)
}
