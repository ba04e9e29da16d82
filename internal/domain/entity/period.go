package entity

import "time"

// BillingPeriod represents a billing cycle of the subscription.
type BillingPeriod struct {
	Name       string    `json:"name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	InvoiceIDs []string  `json:"invoice_ids"`
}

// IsFinished reports whether the period already has an invoice and can be reported on.
func (p BillingPeriod) IsFinished() bool {
	return len(p.InvoiceIDs) > 0
}
