package repository

import (
	"context"

	"github.com/diillson/azure-finops-report-go/internal/shared/types"
)

// Factory builds the driven adapters that need run settings (credentials,
// targets) before they can be created.
type Factory interface {
	Billing(args *types.CLIArgs) (ConsumptionRepository, BillingRepository, error)
	Issues(args *types.CLIArgs) (IssueRepository, error)
	// Archive returns nil when no archive bucket is configured.
	Archive(ctx context.Context, args *types.CLIArgs) (ArchiveRepository, error)
	// Metrics returns nil when no pushgateway is configured.
	Metrics(args *types.CLIArgs) MetricsRepository
}
