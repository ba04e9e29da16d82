package azure

import (
	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// usageDetailsListResult is the wire format of Microsoft.Consumption/usageDetails.
type usageDetailsListResult struct {
	Value    []usageDetail `json:"value"`
	NextLink *string       `json:"nextLink"`
}

type usageDetail struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Tags       map[string]*string    `json:"tags"`
	Properties usageDetailProperties `json:"properties"`
}

type usageDetailProperties struct {
	BillingPeriodID  string          `json:"billingPeriodId"`
	InstanceName     string          `json:"instanceName"`
	InstanceID       string          `json:"instanceId"`
	InstanceLocation string          `json:"instanceLocation"`
	Currency         string          `json:"currency"`
	PretaxCost       decimal.Decimal `json:"pretaxCost"`
	ConsumedService  string          `json:"consumedService"`
}

func (r usageDetailsListResult) toPage() entity.UsagePage {
	page := entity.UsagePage{Records: make([]entity.UsageRecord, 0, len(r.Value))}
	for _, detail := range r.Value {
		page.Records = append(page.Records, detail.toRecord())
	}
	if r.NextLink != nil {
		page.NextLink = *r.NextLink
	}
	return page
}

func (d usageDetail) toRecord() entity.UsageRecord {
	record := entity.UsageRecord{
		InstanceName:     d.Properties.InstanceName,
		PretaxCost:       d.Properties.PretaxCost,
		InstanceLocation: d.Properties.InstanceLocation,
		ConsumedService:  d.Properties.ConsumedService,
		Currency:         d.Properties.Currency,
	}
	if d.Tags != nil {
		record.Tags = make(map[string]string, len(d.Tags))
		for k, v := range d.Tags {
			if v != nil {
				record.Tags[k] = *v
			}
		}
	}
	return record
}

// billingPeriodsListResult is the wire format of Microsoft.Billing/billingPeriods.
type billingPeriodsListResult struct {
	Value    []billingPeriod `json:"value"`
	NextLink *string         `json:"nextLink"`
}

type billingPeriod struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Properties billingPeriodProperties `json:"properties"`
}

type billingPeriodProperties struct {
	BillingPeriodStartDate string   `json:"billingPeriodStartDate"`
	BillingPeriodEndDate   string   `json:"billingPeriodEndDate"`
	InvoiceIDs             []string `json:"invoiceIds"`
}

func (r billingPeriodsListResult) toPeriods() []entity.BillingPeriod {
	periods := make([]entity.BillingPeriod, 0, len(r.Value))
	for _, p := range r.Value {
		period := entity.BillingPeriod{
			Name:      p.Name,
			StartDate: parseDate(p.Properties.BillingPeriodStartDate),
			EndDate:   parseDate(p.Properties.BillingPeriodEndDate),
		}
		for _, id := range p.Properties.InvoiceIDs {
			period.InvoiceIDs = append(period.InvoiceIDs, invoiceName(id))
		}
		periods = append(periods, period)
	}
	return periods
}
