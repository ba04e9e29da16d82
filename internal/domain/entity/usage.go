package entity

import "github.com/shopspring/decimal"

// UsageRecord represents one billing line item returned by the consumption API.
type UsageRecord struct {
	InstanceName     string            `json:"instanceName"`
	PretaxCost       decimal.Decimal   `json:"pretaxCost"`
	InstanceLocation string            `json:"instanceLocation"`
	ConsumedService  string            `json:"consumedService"`
	Currency         string            `json:"currency"`
	Tags             map[string]string `json:"tags,omitempty"`
}

// UsagePage is a bounded page of usage records. An empty NextLink marks the last page.
type UsagePage struct {
	Records  []UsageRecord
	NextLink string
}

// HasNext reports whether another page can be fetched after this one.
func (p UsagePage) HasNext() bool {
	return p.NextLink != ""
}
