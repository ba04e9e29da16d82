package report

import (
	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/diillson/azure-finops-report-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

// ownerTag is the tag read for every requested column in TagValuesOwner mode.
const ownerTag = "owner"

// Aggregator folds usage records into one row per instance name.
// It keeps only the rows, never the records, so memory grows with the
// number of distinct resources.
type Aggregator struct {
	tags      []string
	tagValues string

	index     map[string]int
	rows      []entity.AggregatedResource
	total     decimal.Decimal
	currency  string
	seenFirst bool
	records   int
}

// NewAggregator cria um agregador que extrai as colunas de tag informadas.
// Repeated tag names are kept once, in first-seen order.
func NewAggregator(tags []string, tagValues string) *Aggregator {
	if tagValues == "" {
		tagValues = types.TagValuesOwner
	}
	return &Aggregator{
		tags:      uniqueTags(tags),
		tagValues: tagValues,
		index:     make(map[string]int),
	}
}

func uniqueTags(tags []string) []string {
	var unique []string
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		unique = append(unique, tag)
	}
	return unique
}

// AddPage merges one page of records, in delivery order.
func (a *Aggregator) AddPage(records []entity.UsageRecord) {
	for _, record := range records {
		a.add(record)
	}
}

func (a *Aggregator) add(record entity.UsageRecord) {
	if !a.seenFirst {
		a.currency = record.Currency
		a.seenFirst = true
	}

	if i, ok := a.index[record.InstanceName]; ok {
		a.rows[i].Cost = a.rows[i].Cost.Add(record.PretaxCost)
	} else {
		row := entity.AggregatedResource{
			InstanceName:     record.InstanceName,
			Cost:             record.PretaxCost,
			InstanceLocation: record.InstanceLocation,
			Service:          record.ConsumedService,
		}
		for _, tag := range a.tags {
			row.Tags = append(row.Tags, entity.TagColumn{Name: tag, Value: a.tagValue(record, tag)})
		}
		a.index[record.InstanceName] = len(a.rows)
		a.rows = append(a.rows, row)
	}

	a.total = a.total.Add(record.PretaxCost)
	a.records++
}

// tagValue reads the "owner" tag whatever the column is called, unless the
// aggregator runs in TagValuesColumn mode.
func (a *Aggregator) tagValue(record entity.UsageRecord, column string) string {
	key := ownerTag
	if a.tagValues == types.TagValuesColumn {
		key = column
	}
	if record.Tags == nil {
		return ""
	}
	return record.Tags[key]
}

// Len returns the number of distinct resources.
func (a *Aggregator) Len() int {
	return len(a.rows)
}

// Records returns the number of records merged so far.
func (a *Aggregator) Records() int {
	return a.records
}

// Total returns the sum of every record's pretax cost.
func (a *Aggregator) Total() decimal.Decimal {
	return a.total
}

// Currency returns the currency of the first record seen.
func (a *Aggregator) Currency() string {
	return a.currency
}
