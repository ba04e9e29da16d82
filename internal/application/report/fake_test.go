package report

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// fakeConsumption serves pre-built pages keyed by period. Page i links to
// "<period>/<i+1>" when more pages follow.
type fakeConsumption struct {
	mu      sync.Mutex
	pages   map[string][][]entity.UsageRecord
	calls   map[string]int
	failOn  string
	failErr error
}

func newFakeConsumption() *fakeConsumption {
	return &fakeConsumption{
		pages: make(map[string][][]entity.UsageRecord),
		calls: make(map[string]int),
	}
}

func (f *fakeConsumption) withPages(period string, pages ...[]entity.UsageRecord) *fakeConsumption {
	f.pages[period] = pages
	return f
}

func (f *fakeConsumption) page(period string, i int) (entity.UsagePage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[period]++

	if f.failOn == fmt.Sprintf("%s/%d", period, i) {
		return entity.UsagePage{}, f.failErr
	}

	pages, ok := f.pages[period]
	if !ok || i >= len(pages) {
		if i == 0 {
			return entity.UsagePage{}, nil
		}
		return entity.UsagePage{}, errors.New("unknown page")
	}

	page := entity.UsagePage{Records: pages[i]}
	if i < len(pages)-1 {
		page.NextLink = fmt.Sprintf("%s/%d", period, i+1)
	}
	return page, nil
}

func (f *fakeConsumption) ListByPeriod(ctx context.Context, period string) (entity.UsagePage, error) {
	return f.page(period, 0)
}

func (f *fakeConsumption) ListByPeriodNext(ctx context.Context, nextLink string) (entity.UsagePage, error) {
	sep := strings.LastIndex(nextLink, "/")
	if sep < 0 {
		return entity.UsagePage{}, errors.New("malformed next link")
	}
	i, err := strconv.Atoi(nextLink[sep+1:])
	if err != nil {
		return entity.UsagePage{}, err
	}
	return f.page(nextLink[:sep], i)
}

func (f *fakeConsumption) callCount(period string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[period]
}

func usage(name string, cost string, opts ...func(*entity.UsageRecord)) entity.UsageRecord {
	r := entity.UsageRecord{
		InstanceName:     name,
		PretaxCost:       decimal.RequireFromString(cost),
		InstanceLocation: "westeurope",
		ConsumedService:  "Microsoft.Compute",
		Currency:         "USD",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func withTags(tags map[string]string) func(*entity.UsageRecord) {
	return func(r *entity.UsageRecord) { r.Tags = tags }
}

func withService(service string) func(*entity.UsageRecord) {
	return func(r *entity.UsageRecord) { r.ConsumedService = service }
}

func withCurrency(currency string) func(*entity.UsageRecord) {
	return func(r *entity.UsageRecord) { r.Currency = currency }
}
