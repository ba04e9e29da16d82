package metrics

import (
	"context"
	"fmt"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const jobName = "azure_finops_report"

// PushgatewayRepositoryImpl envia as métricas do relatório para um Prometheus Pushgateway.
type PushgatewayRepositoryImpl struct {
	url            string
	subscriptionID string
}

// NewPushgatewayRepository cria o repositório de métricas.
func NewPushgatewayRepository(url, subscriptionID string) *PushgatewayRepositoryImpl {
	return &PushgatewayRepositoryImpl{url: url, subscriptionID: subscriptionID}
}

// PushComparison replaces the job's metrics with the figures of both periods.
func (r *PushgatewayRepositoryImpl) PushComparison(ctx context.Context, comparison entity.CostComparison) error {
	registry := prometheus.NewRegistry()

	totalCost := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "azure_billing_period_total_cost",
		Help: "Total pretax cost of the billing period.",
	}, []string{"period", "currency", "position"})
	resources := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "azure_billing_period_resources",
		Help: "Number of distinct resources billed in the period.",
	}, []string{"period", "position"})
	change := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "azure_billing_period_cost_change_percent",
		Help: "Cost change of the current period compared to the previous one. Absent when undefined.",
	})

	registry.MustRegister(totalCost, resources)

	for position, report := range map[string]entity.PeriodReport{"current": comparison.Current, "previous": comparison.Previous} {
		cost, _ := report.TotalCost.Float64()
		totalCost.WithLabelValues(report.Period, report.Currency, position).Set(cost)
		resources.WithLabelValues(report.Period, position).Set(float64(report.TotalNumberOfResources))
	}

	if comparison.PercentChange != nil {
		registry.MustRegister(change)
		change.Set(*comparison.PercentChange)
	}

	err := push.New(r.url, jobName).
		Grouping("subscription", r.subscriptionID).
		Gatherer(registry).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("error pushing metrics to %s: %w", r.url, err)
	}
	return nil
}
