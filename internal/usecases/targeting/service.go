package targeting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/team6/sales-report-api/infrastructure/integrator/salesdata"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/domain"
)

var (
	ErrInvalidTarget   = errors.New("invalid target")
	ErrInvalidLocation = errors.New("invalid location")
)

// Targeter manages monthly revenue goals per location.
type Targeter interface {
	ListTargets(ctx context.Context) ([]*domain.SalesTarget, error)
	TargetsForMonth(ctx context.Context, month string, locationID *int) ([]*domain.SalesTarget, error)
	SaveTarget(ctx context.Context, target *domain.SalesTarget) error
}

type Service struct {
	cfg          *config.Config
	salesService salesdata.SalesDataIntegrator
}

func NewService(cfg *config.Config, salesService salesdata.SalesDataIntegrator) Targeter {
	return &Service{
		cfg:          cfg,
		salesService: salesService,
	}
}

func (s *Service) ListTargets(ctx context.Context) ([]*domain.SalesTarget, error) {
	return s.salesService.ListTargets(ctx)
}

// TargetsForMonth filters the target list to one YYYY-MM month, optionally
// narrowed to one location.
func (s *Service) TargetsForMonth(ctx context.Context, month string, locationID *int) ([]*domain.SalesTarget, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidTarget)
	}

	targets, err := s.salesService.ListTargets(ctx)
	if err != nil {
		return nil, err
	}

	matching := make([]*domain.SalesTarget, 0, len(targets))
	for _, target := range targets {
		if target.TargetMonth() != month {
			continue
		}
		if locationID != nil && target.LocationID != *locationID {
			continue
		}
		matching = append(matching, target)
	}

	return matching, nil
}

func (s *Service) SaveTarget(ctx context.Context, target *domain.SalesTarget) error {
	if !domain.ValidLocationID(target.LocationID) {
		return ErrInvalidLocation
	}

	if target.TargetAmount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidTarget)
	}

	date, err := time.Parse(time.DateOnly, target.TargetDate)
	if err != nil {
		return fmt.Errorf("%w: target date must be YYYY-MM-DD", ErrInvalidTarget)
	}

	// Targets are monthly; pin the date to the first of the month.
	target.TargetDate = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).
		Format(time.DateOnly)

	return s.salesService.SaveTarget(ctx, target)
}
