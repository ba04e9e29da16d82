package entity

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TagColumn is a dynamic column added to a resource row, e.g. "owner".
type TagColumn struct {
	Name  string
	Value string
}

// AggregatedResource is one row of the report: all line items of a single instance.
type AggregatedResource struct {
	InstanceName     string
	Cost             decimal.Decimal
	Costs            string
	InstanceLocation string
	Service          string
	Tags             []TagColumn
}

// ResourceColumns are the fixed columns of every row. Tag columns follow them
// and may not reuse their names.
var ResourceColumns = []string{"instanceName", "costs", "instanceLocation", "service"}

// Columns returns the column names of the row in output order.
func (r AggregatedResource) Columns() []string {
	columns := append([]string(nil), ResourceColumns...)
	for _, tag := range r.Tags {
		columns = append(columns, tag.Name)
	}
	return columns
}

// Values returns the cell values of the row, aligned with Columns.
func (r AggregatedResource) Values() []string {
	values := []string{r.InstanceName, r.Costs, r.InstanceLocation, r.Service}
	for _, tag := range r.Tags {
		values = append(values, tag.Value)
	}
	return values
}

// MarshalJSON renders the row as a flat object with tag columns as extra keys.
func (r AggregatedResource) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	values := r.Values()
	buf.WriteByte('{')
	for i, column := range r.Columns() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PeriodReport is the finalized cost report of one billing period.
type PeriodReport struct {
	Period                 string               `json:"period"`
	TotalNumberOfResources int                  `json:"totalNumberOfResources"`
	TotalCosts             string               `json:"totalCosts"`
	TotalCost              decimal.Decimal      `json:"-"`
	Currency               string               `json:"currency"`
	Resources              []AggregatedResource `json:"resources"`
}

// CostComparison holds the current and previous period reports and the
// percentage change between them. PercentChange is nil when undefined.
type CostComparison struct {
	Current       PeriodReport `json:"current"`
	Previous      PeriodReport `json:"previous"`
	PercentChange *float64     `json:"percent_change_in_total_cost,omitempty"`
}
