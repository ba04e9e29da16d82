package report

import (
	"sort"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Finalize turns the aggregated rows into a period report. Rows are copied
// so later aggregation cannot change a report already handed out.
func Finalize(period string, agg *Aggregator) entity.PeriodReport {
	resources := make([]entity.AggregatedResource, len(agg.rows))
	for i, row := range agg.rows {
		row.Tags = append([]entity.TagColumn(nil), row.Tags...)
		resources[i] = row
	}

	sort.SliceStable(resources, func(i, j int) bool {
		return resources[i].Cost.GreaterThan(resources[j].Cost)
	})

	currency := agg.Currency()
	for i := range resources {
		resources[i].Costs = FormatCost(resources[i].Cost, currency)
	}

	return entity.PeriodReport{
		Period:                 period,
		TotalNumberOfResources: len(resources),
		TotalCosts:             agg.Total().StringFixed(2),
		TotalCost:              agg.Total(),
		Currency:               currency,
		Resources:              resources,
	}
}

// FormatCost formats an amount with two decimals followed by the currency code.
func FormatCost(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currency
}
