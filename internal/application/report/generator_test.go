package report

import (
	"context"
	"errors"
	"testing"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportForPeriod_SinglePageDuplicate(t *testing.T) {
	repo := newFakeConsumption().withPages("202401", []entity.UsageRecord{
		{InstanceName: "vm-a", PretaxCost: decimal.NewFromInt(10), Currency: "USD", ConsumedService: "Compute"},
		{InstanceName: "vm-a", PretaxCost: decimal.NewFromInt(5), Currency: "USD", ConsumedService: "Compute"},
	})

	r, err := GenerateReportForPeriod(context.Background(), repo, "202401", nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, r.TotalNumberOfResources)
	assert.Equal(t, "15.00", r.TotalCosts)
	require.Len(t, r.Resources, 1)
	assert.Equal(t, "vm-a", r.Resources[0].InstanceName)
	assert.Equal(t, "15.00 USD", r.Resources[0].Costs)
	assert.Equal(t, "Compute", r.Resources[0].Service)
	assert.Equal(t, 1, repo.callCount("202401"))
}

func TestGenerateReportForPeriod_TotalAcrossPages(t *testing.T) {
	repo := newFakeConsumption().withPages("202401",
		[]entity.UsageRecord{usage("vm-a", "1.11"), usage("vm-b", "2.22")},
		[]entity.UsageRecord{usage("vm-a", "3.33")},
		[]entity.UsageRecord{usage("vm-c", "4.44"), usage("vm-b", "0.01")},
	)

	var pages []int
	r, err := GenerateReportForPeriod(context.Background(), repo, "202401", nil, Options{
		OnPage: func(period string, n, resources int) { pages = append(pages, n) },
	})
	require.NoError(t, err)

	assert.Equal(t, "11.11", r.TotalCosts)
	assert.Equal(t, 3, r.TotalNumberOfResources)
	assert.Equal(t, []int{1, 2, 3}, pages)
	assert.Equal(t, 3, repo.callCount("202401"))

	names := []string{r.Resources[0].InstanceName, r.Resources[1].InstanceName, r.Resources[2].InstanceName}
	assert.Equal(t, []string{"vm-a", "vm-c", "vm-b"}, names)
}

func TestGenerateReportForPeriod_ErrorDiscardsReport(t *testing.T) {
	boom := errors.New("unauthorized")
	repo := newFakeConsumption().withPages("202401",
		[]entity.UsageRecord{usage("vm-a", "1")},
		[]entity.UsageRecord{usage("vm-b", "1")},
	)
	repo.failOn, repo.failErr = "202401/1", boom

	r, err := GenerateReportForPeriod(context.Background(), repo, "202401", nil, Options{})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, r.Resources)
	assert.Empty(t, r.Period)
}

func TestGenerateReports_TagsOnlyOnCurrentPeriod(t *testing.T) {
	repo := newFakeConsumption().
		withPages("202402", []entity.UsageRecord{
			usage("vm-a", "60", withTags(map[string]string{"owner": "alice"})),
			usage("vm-a", "40", withTags(map[string]string{"owner": "bob"})),
		}).
		withPages("202401", []entity.UsageRecord{
			usage("vm-a", "50", withTags(map[string]string{"owner": "carol"})),
		})

	current, previous, err := GenerateReports(context.Background(), repo, "202402", "202401", []string{"owner"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "202402", current.Period)
	assert.Equal(t, "100.00", current.TotalCosts)
	assert.Equal(t, []entity.TagColumn{{Name: "owner", Value: "alice"}}, current.Resources[0].Tags)

	assert.Equal(t, "202401", previous.Period)
	assert.Equal(t, "50.00", previous.TotalCosts)
	assert.Empty(t, previous.Resources[0].Tags)
	assert.Equal(t, []string{"instanceName", "costs", "instanceLocation", "service"}, previous.Resources[0].Columns())
}

func TestGenerateReports_FailureAbortsBoth(t *testing.T) {
	boom := errors.New("network down")
	repo := newFakeConsumption().
		withPages("202402", []entity.UsageRecord{usage("vm-a", "1")}).
		withPages("202401", []entity.UsageRecord{usage("vm-a", "1")})
	repo.failOn, repo.failErr = "202401/0", boom

	current, previous, err := GenerateReports(context.Background(), repo, "202402", "202401", nil, Options{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "previous period")
	assert.Empty(t, current.Period)
	assert.Empty(t, previous.Period)
}

func TestCompare(t *testing.T) {
	report := func(total string) entity.PeriodReport {
		return entity.PeriodReport{TotalCost: decimal.RequireFromString(total)}
	}

	tests := []struct {
		name     string
		current  string
		previous string
		want     *float64
	}{
		{name: "increase", current: "150", previous: "100", want: ptr(50)},
		{name: "decrease", current: "75", previous: "100", want: ptr(-25)},
		{name: "both zero", current: "0", previous: "0", want: ptr(0)},
		{name: "previous zero", current: "100", previous: "0", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compare(report(tt.current), report(tt.previous))
			if tt.want == nil {
				assert.Nil(t, c.PercentChange)
				return
			}
			require.NotNil(t, c.PercentChange)
			assert.InDelta(t, *tt.want, *c.PercentChange, 1e-9)
		})
	}
}

func ptr(f float64) *float64 { return &f }
