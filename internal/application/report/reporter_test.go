package report

import (
	"testing"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalize_SortsByCostDescendingAndKeepsTies(t *testing.T) {
	agg := NewAggregator(nil, "")
	agg.AddPage([]entity.UsageRecord{
		usage("tie-1", "5"),
		usage("big", "50"),
		usage("tie-2", "5"),
		usage("small", "0.5"),
		usage("tie-3", "5"),
	})

	r := Finalize("202401", agg)

	names := make([]string, 0, len(r.Resources))
	for _, res := range r.Resources {
		names = append(names, res.InstanceName)
	}
	assert.Equal(t, []string{"big", "tie-1", "tie-2", "tie-3", "small"}, names)
	assert.Equal(t, "50.00 USD", r.Resources[0].Costs)
	assert.Equal(t, "0.50 USD", r.Resources[4].Costs)
	assert.Equal(t, "65.50", r.TotalCosts)
	assert.Equal(t, 5, r.TotalNumberOfResources)
	assert.Equal(t, "USD", r.Currency)
	assert.Equal(t, "202401", r.Period)
}

func TestFinalize_DoesNotAliasAggregator(t *testing.T) {
	agg := NewAggregator([]string{"owner"}, "")
	agg.AddPage([]entity.UsageRecord{usage("vm-a", "1", withTags(map[string]string{"owner": "alice"}))})

	r := Finalize("202401", agg)
	agg.AddPage([]entity.UsageRecord{usage("vm-a", "100")})
	agg.rows[0].Tags[0].Value = "mallory"

	require.Len(t, r.Resources, 1)
	assert.Equal(t, "1.00 USD", r.Resources[0].Costs)
	assert.True(t, r.Resources[0].Cost.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "alice", r.Resources[0].Tags[0].Value)
	assert.Equal(t, "1.00", r.TotalCosts)
}

func TestFinalize_EmptyPeriod(t *testing.T) {
	r := Finalize("202401", NewAggregator(nil, ""))

	assert.Equal(t, 0, r.TotalNumberOfResources)
	assert.Equal(t, "0.00", r.TotalCosts)
	assert.Empty(t, r.Resources)
	assert.Equal(t, "", r.Currency)
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "12.35 EUR", FormatCost(decimal.RequireFromString("12.345"), "EUR"))
	assert.Equal(t, "3.00", FormatCost(decimal.NewFromInt(3), ""))
}
