package repository

import (
	"context"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
)

// ConsumptionRepository defines the interface for the usage details API.
type ConsumptionRepository interface {
	// ListByPeriod fetches the first page of usage records for a billing period.
	ListByPeriod(ctx context.Context, period string) (entity.UsagePage, error)
	// ListByPeriodNext fetches the page behind a continuation link.
	ListByPeriodNext(ctx context.Context, nextLink string) (entity.UsagePage, error)
}

// BillingRepository defines the interface for billing period enumeration.
type BillingRepository interface {
	ListBillingPeriods(ctx context.Context, top int) ([]entity.BillingPeriod, error)
}
