package repository

import (
	"context"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(comparison entity.CostComparison, filename string, outputDir string) (string, error)
	ExportToJSON(comparison entity.CostComparison, filename string, outputDir string) (string, error)
	ExportToPDF(comparison entity.CostComparison, filename string, outputDir string) (string, error)
}

// ArchiveRepository stores serialized reports outside the runner.
type ArchiveRepository interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

// MetricsRepository pushes report figures to a metrics backend.
type MetricsRepository interface {
	PushComparison(ctx context.Context, comparison entity.CostComparison) error
}
