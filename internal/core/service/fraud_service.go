package service

import (
	"context"

	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

// FraudService serves the imported jeonse-fraud dataset. Reads only; the
// dataset is loaded out of band.
type FraudService struct {
	repo ports.FraudRepository
}

func NewFraudService(repo ports.FraudRepository) *FraudService {
	return &FraudService{repo: repo}
}

func (s *FraudService) CasesByRegion(ctx context.Context, city, district, neighborhood string) ([]domain.FraudCase, error) {
	return s.repo.FindByRegion(ctx, city, district, neighborhood)
}

func (s *FraudService) StatsByYear(ctx context.Context, year int) ([]domain.FraudStat, error) {
	return s.repo.FindStatsByYear(ctx, year)
}
