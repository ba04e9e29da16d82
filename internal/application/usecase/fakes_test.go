package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/diillson/azure-finops-report-go/internal/domain/repository"
	"github.com/diillson/azure-finops-report-go/internal/shared/types"
	"github.com/stretchr/testify/mock"
)

type fakeConsole struct {
	mu     sync.Mutex
	errors []string
	infos  []string
}

func (c *fakeConsole) Print(a ...interface{})                 {}
func (c *fakeConsole) Printf(format string, a ...interface{}) {}
func (c *fakeConsole) Println(a ...interface{})               {}
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{})       {}
func (c *fakeConsole) Status(message string) types.StatusHandle         { return fakeStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface                { return fakeTable{} }
func (c *fakeConsole) DisplayPeriodBars(periodCosts []types.PeriodCost) {}

type fakeStatus struct{}

func (fakeStatus) Update(message string) {}
func (fakeStatus) Stop()                 {}

type fakeTable struct{}

func (fakeTable) AddColumn(name string, options ...interface{}) {}
func (fakeTable) AddRow(cells ...interface{})                   {}
func (fakeTable) Render() string                                { return "" }

type fakeOutputs struct {
	outputs map[string]string
	errors  []string
}

func newFakeOutputs() *fakeOutputs {
	return &fakeOutputs{outputs: make(map[string]string)}
}

func (o *fakeOutputs) GetInput(name string) string { return "" }
func (o *fakeOutputs) SetOutput(name, value string) {
	o.outputs[name] = value
}
func (o *fakeOutputs) Errorf(format string, a ...interface{}) {
	o.errors = append(o.errors, fmt.Sprintf(format, a...))
}

// singlePageConsumption returns one page per period.
type singlePageConsumption struct {
	pages map[string][]entity.UsageRecord
	err   error
}

func (c singlePageConsumption) ListByPeriod(ctx context.Context, period string) (entity.UsagePage, error) {
	if c.err != nil {
		return entity.UsagePage{}, c.err
	}
	return entity.UsagePage{Records: c.pages[period]}, nil
}

func (c singlePageConsumption) ListByPeriodNext(ctx context.Context, nextLink string) (entity.UsagePage, error) {
	return entity.UsagePage{}, fmt.Errorf("unexpected next link %s", nextLink)
}

type fakeBilling struct {
	periods []entity.BillingPeriod
	err     error
}

func (b fakeBilling) ListBillingPeriods(ctx context.Context, top int) ([]entity.BillingPeriod, error) {
	return b.periods, b.err
}

type mockIssues struct {
	mock.Mock
}

func (m *mockIssues) PublishClosed(ctx context.Context, title, body string) (string, error) {
	args := m.Called(ctx, title, body)
	return args.String(0), args.Error(1)
}

type fakeFactory struct {
	consumption repository.ConsumptionRepository
	billing     repository.BillingRepository
	issues      repository.IssueRepository
	issuesErr   error
}

func (f *fakeFactory) Billing(args *types.CLIArgs) (repository.ConsumptionRepository, repository.BillingRepository, error) {
	return f.consumption, f.billing, nil
}

func (f *fakeFactory) Issues(args *types.CLIArgs) (repository.IssueRepository, error) {
	if f.issuesErr != nil {
		return nil, f.issuesErr
	}
	return f.issues, nil
}

func (f *fakeFactory) Archive(ctx context.Context, args *types.CLIArgs) (repository.ArchiveRepository, error) {
	return nil, nil
}

func (f *fakeFactory) Metrics(args *types.CLIArgs) repository.MetricsRepository {
	return nil
}
