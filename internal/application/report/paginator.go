package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/diillson/azure-finops-report-go/internal/domain/repository"
)

// ErrNoMorePages is returned by NextPage once the last page was consumed.
var ErrNoMorePages = errors.New("no more pages available")

// UsagePaginator walks the usage detail pages of one billing period.
// It is not restartable: a new paginator must be created to start over.
type UsagePaginator struct {
	repo        repository.ConsumptionRepository
	period      string
	pageTimeout time.Duration

	nextLink  string
	firstPage bool
	done      bool
	fetched   int
}

// NewUsagePaginator cria um paginador para o período informado.
func NewUsagePaginator(repo repository.ConsumptionRepository, period string, pageTimeout time.Duration) *UsagePaginator {
	return &UsagePaginator{
		repo:        repo,
		period:      period,
		pageTimeout: pageTimeout,
		firstPage:   true,
	}
}

// HasMorePages reports whether NextPage may be called again.
func (p *UsagePaginator) HasMorePages() bool {
	return !p.done
}

// PagesFetched returns the number of pages retrieved so far.
func (p *UsagePaginator) PagesFetched() int {
	return p.fetched
}

// NextPage fetches the next page. The first call queries by period, later
// calls follow the continuation link of the previous page.
func (p *UsagePaginator) NextPage(ctx context.Context) (entity.UsagePage, error) {
	if p.done {
		return entity.UsagePage{}, ErrNoMorePages
	}

	if p.pageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.pageTimeout)
		defer cancel()
	}

	var page entity.UsagePage
	var err error
	if p.firstPage {
		page, err = p.repo.ListByPeriod(ctx, p.period)
	} else {
		page, err = p.repo.ListByPeriodNext(ctx, p.nextLink)
	}
	if err != nil {
		p.done = true
		return entity.UsagePage{}, fmt.Errorf("failed to fetch page %d of period %s: %w", p.fetched+1, p.period, err)
	}

	p.fetched++
	p.firstPage = false
	p.nextLink = page.NextLink
	if !page.HasNext() {
		p.done = true
	}
	return page, nil
}
