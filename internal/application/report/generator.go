package report

import (
	"context"
	"fmt"
	"time"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/diillson/azure-finops-report-go/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Options tunes a report run.
type Options struct {
	// TagValues selects how tag columns are filled, see types.TagValuesOwner.
	TagValues string
	// PageTimeout bounds every page fetch. Zero means no timeout.
	PageTimeout time.Duration
	// OnPage is called after each page has been merged.
	OnPage func(period string, pages, resources int)
}

// GenerateReportForPeriod fetches every usage page of a period, one after
// the other, and returns the finalized report.
func GenerateReportForPeriod(ctx context.Context, repo repository.ConsumptionRepository, period string, tags []string, opts Options) (entity.PeriodReport, error) {
	paginator := NewUsagePaginator(repo, period, opts.PageTimeout)
	agg := NewAggregator(tags, opts.TagValues)

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return entity.PeriodReport{}, err
		}
		agg.AddPage(page.Records)

		if opts.OnPage != nil {
			opts.OnPage(period, paginator.PagesFetched(), agg.Len())
		}
	}

	return Finalize(period, agg), nil
}

// GenerateReports builds the current period report with tag columns and the
// previous period report without them. Both periods run concurrently.
func GenerateReports(
	ctx context.Context,
	repo repository.ConsumptionRepository,
	currentPeriod, previousPeriod string,
	tags []string,
	opts Options,
) (entity.PeriodReport, entity.PeriodReport, error) {
	var current, previous entity.PeriodReport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := GenerateReportForPeriod(gctx, repo, currentPeriod, tags, opts)
		if err != nil {
			return fmt.Errorf("failed to generate report for current period: %w", err)
		}
		current = r
		return nil
	})
	g.Go(func() error {
		r, err := GenerateReportForPeriod(gctx, repo, previousPeriod, nil, opts)
		if err != nil {
			return fmt.Errorf("failed to generate report for previous period: %w", err)
		}
		previous = r
		return nil
	})

	if err := g.Wait(); err != nil {
		return entity.PeriodReport{}, entity.PeriodReport{}, err
	}
	return current, previous, nil
}

var decimalHundred = decimal.NewFromInt(100)

// Compare builds the comparison of two reports. The percent change is nil
// when the previous total is zero and the current one is not; two zero
// totals compare as 0%.
func Compare(current, previous entity.PeriodReport) entity.CostComparison {
	comparison := entity.CostComparison{Current: current, Previous: previous}

	if !previous.TotalCost.IsZero() {
		change, _ := current.TotalCost.Sub(previous.TotalCost).
			Div(previous.TotalCost).
			Mul(decimalHundred).
			Float64()
		comparison.PercentChange = &change
	} else if current.TotalCost.IsZero() {
		change := 0.0
		comparison.PercentChange = &change
	}

	return comparison
}
