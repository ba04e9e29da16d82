package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"github.com/diillson/azure-finops-report-go/internal/application/report"
	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/diillson/azure-finops-report-go/internal/domain/repository"
	"github.com/diillson/azure-finops-report-go/internal/shared/types"
)

const (
	// billingPeriodsToList is how many recent periods are requested from the billing API.
	billingPeriodsToList = 5

	OutputCurrentPeriod  = "reportThisMonth"
	OutputPreviousPeriod = "reportPreviousMonth"
)

// ReportUseCase handles the period-over-period cost report.
type ReportUseCase struct {
	factory    repository.Factory
	outputRepo repository.OutputRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	factory repository.Factory,
	outputRepo repository.OutputRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		factory:    factory,
		outputRepo: outputRepo,
		exportRepo: exportRepo,
		console:    console,
	}
}

// SelectPeriods returns the names of the two most recent finished periods.
func SelectPeriods(periods []entity.BillingPeriod) (current, previous string, err error) {
	finished := make([]entity.BillingPeriod, 0, len(periods))
	for _, p := range periods {
		if p.IsFinished() {
			finished = append(finished, p)
		}
	}
	if len(finished) < 2 {
		return "", "", fmt.Errorf("%w: found %d", types.ErrNotEnoughPeriods, len(finished))
	}
	return finished[0].Name, finished[1].Name, nil
}

// RunReport executa o fluxo completo: períodos, relatórios, saídas e issue.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	if err := args.Validate(); err != nil {
		return err
	}

	consumptionRepo, billingRepo, err := uc.factory.Billing(args)
	if err != nil {
		return err
	}

	status := uc.console.Status("Listing billing periods...")

	periods, err := billingRepo.ListBillingPeriods(ctx, billingPeriodsToList)
	if err != nil {
		status.Stop()
		return fmt.Errorf("failed to list billing periods: %w", err)
	}

	currentPeriod, previousPeriod, err := SelectPeriods(periods)
	if err != nil {
		status.Stop()
		return err
	}

	var mu sync.Mutex
	opts := report.Options{
		TagValues:   args.TagValues,
		PageTimeout: args.PageTimeout,
		OnPage: func(period string, pages, resources int) {
			mu.Lock()
			defer mu.Unlock()
			status.Update(fmt.Sprintf("Period %s: %d page(s), %d resource(s)", period, pages, resources))
		},
	}

	current, previous, err := report.GenerateReports(ctx, consumptionRepo, currentPeriod, previousPeriod, args.IncludeTags, opts)
	status.Stop()
	if err != nil {
		return err
	}

	comparison := report.Compare(current, previous)

	uc.displaySummary(comparison)

	if err := uc.emitOutputs(comparison); err != nil {
		return err
	}

	if args.DisableIssue {
		uc.console.LogInfo("Issue creation disabled, skipping.")
	} else {
		uc.publishIssue(ctx, args, comparison)
	}

	uc.exportReports(args, comparison)
	uc.archiveReports(ctx, args, comparison)
	uc.pushMetrics(ctx, args, comparison)

	return nil
}

func (uc *ReportUseCase) emitOutputs(comparison entity.CostComparison) error {
	currentJSON, err := json.Marshal(comparison.Current)
	if err != nil {
		return fmt.Errorf("error encoding current period report: %w", err)
	}
	previousJSON, err := json.Marshal(comparison.Previous)
	if err != nil {
		return fmt.Errorf("error encoding previous period report: %w", err)
	}

	uc.outputRepo.SetOutput(OutputCurrentPeriod, string(currentJSON))
	uc.outputRepo.SetOutput(OutputPreviousPeriod, string(previousJSON))
	return nil
}

// publishIssue never fails the run: the outputs are already emitted and
// later workflow steps may still use them.
func (uc *ReportUseCase) publishIssue(ctx context.Context, args *types.CLIArgs, comparison entity.CostComparison) {
	issueRepo, err := uc.factory.Issues(args)
	if err != nil {
		uc.reportFailure("Failed to publish report issue: %s", err)
		return
	}

	url, err := issueRepo.PublishClosed(ctx, FormatIssueTitle(comparison), FormatIssueBody(comparison))
	if err != nil {
		uc.reportFailure("Failed to publish report issue: %s", err)
		return
	}
	uc.console.LogSuccess("Published report issue: %s", url)
}

func (uc *ReportUseCase) exportReports(args *types.CLIArgs, comparison entity.CostComparison) {
	if args.ReportName == "" || uc.exportRepo == nil {
		return
	}

	for _, reportType := range args.ReportType {
		var exported string
		var err error
		switch reportType {
		case "csv":
			exported, err = uc.exportRepo.ExportToCSV(comparison, args.ReportName, args.Dir)
		case "json":
			exported, err = uc.exportRepo.ExportToJSON(comparison, args.ReportName, args.Dir)
		case "pdf":
			exported, err = uc.exportRepo.ExportToPDF(comparison, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
			continue
		}
		if err != nil {
			uc.reportFailure("Failed to export to %s: %s", reportType, err)
		} else {
			uc.console.LogSuccess("Successfully exported to %s: %s", reportType, exported)
		}
	}
}

func (uc *ReportUseCase) archiveReports(ctx context.Context, args *types.CLIArgs, comparison entity.CostComparison) {
	archiveRepo, err := uc.factory.Archive(ctx, args)
	if err != nil {
		uc.reportFailure("Failed to set up report archive: %s", err)
		return
	}
	if archiveRepo == nil {
		return
	}

	for _, r := range []entity.PeriodReport{comparison.Current, comparison.Previous} {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			uc.reportFailure("Failed to encode report %s: %s", r.Period, err)
			continue
		}
		location, err := archiveRepo.Upload(ctx, path.Join(args.ArchivePrefix, r.Period+".json"), data)
		if err != nil {
			uc.reportFailure("Failed to archive report %s: %s", r.Period, err)
			continue
		}
		uc.console.LogSuccess("Archived report %s: %s", r.Period, location)
	}
}

func (uc *ReportUseCase) pushMetrics(ctx context.Context, args *types.CLIArgs, comparison entity.CostComparison) {
	metricsRepo := uc.factory.Metrics(args)
	if metricsRepo == nil {
		return
	}
	if err := metricsRepo.PushComparison(ctx, comparison); err != nil {
		uc.reportFailure("Failed to push metrics: %s", err)
		return
	}
	uc.console.LogSuccess("Pushed report metrics to %s", args.PushgatewayURL)
}

// reportFailure shows the error on the console and as a workflow annotation.
func (uc *ReportUseCase) reportFailure(format string, a ...interface{}) {
	uc.console.LogError(format, a...)
	uc.outputRepo.Errorf(format, a...)
}

func (uc *ReportUseCase) displaySummary(comparison entity.CostComparison) {
	current, previous := comparison.Current, comparison.Previous

	table := uc.console.CreateTable()
	table.AddColumn("Period")
	table.AddColumn("Total Costs")
	table.AddColumn("Resources")
	table.AddColumn("Change")
	table.AddRow(previous.Period, withCurrency(previous), previous.TotalNumberOfResources, "")
	table.AddRow(current.Period, withCurrency(current), current.TotalNumberOfResources, FormatPercentChange(comparison.PercentChange))
	uc.console.Print(table.Render())

	prevCost, _ := previous.TotalCost.Float64()
	curCost, _ := current.TotalCost.Float64()
	uc.console.DisplayPeriodBars([]types.PeriodCost{
		{Period: previous.Period, Cost: prevCost, Currency: previous.Currency},
		{Period: current.Period, Cost: curCost, Currency: current.Currency},
	})
}
