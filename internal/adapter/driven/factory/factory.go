package factory

import (
	"context"

	"github.com/diillson/azure-finops-report-go/internal/adapter/driven/archive"
	"github.com/diillson/azure-finops-report-go/internal/adapter/driven/azure"
	"github.com/diillson/azure-finops-report-go/internal/adapter/driven/github"
	"github.com/diillson/azure-finops-report-go/internal/adapter/driven/metrics"
	"github.com/diillson/azure-finops-report-go/internal/domain/repository"
	"github.com/diillson/azure-finops-report-go/internal/shared/types"
)

// FactoryImpl cria os adaptadores que dependem das configurações da execução.
type FactoryImpl struct{}

// NewFactory cria uma nova implementação do Factory.
func NewFactory() repository.Factory {
	return &FactoryImpl{}
}

func (f *FactoryImpl) Billing(args *types.CLIArgs) (repository.ConsumptionRepository, repository.BillingRepository, error) {
	repo, err := azure.NewAzureRepository(azure.Credentials{
		SubscriptionID: args.SubscriptionID,
		DirectoryID:    args.DirectoryID,
		ClientID:       args.ClientID,
		ClientSecret:   args.ClientSecret,
	}, args.MaxRetries)
	if err != nil {
		return nil, nil, err
	}
	return repo, repo, nil
}

func (f *FactoryImpl) Issues(args *types.CLIArgs) (repository.IssueRepository, error) {
	repo, err := github.NewIssueRepository(args.GitHubToken, args.Repository)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (f *FactoryImpl) Archive(ctx context.Context, args *types.CLIArgs) (repository.ArchiveRepository, error) {
	if args.ArchiveBucket == "" {
		return nil, nil
	}
	repo, err := archive.NewS3Repository(ctx, args.ArchiveBucket)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (f *FactoryImpl) Metrics(args *types.CLIArgs) repository.MetricsRepository {
	if args.PushgatewayURL == "" {
		return nil
	}
	return metrics.NewPushgatewayRepository(args.PushgatewayURL, args.SubscriptionID)
}
