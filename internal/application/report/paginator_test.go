package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsagePaginator_FetchesEveryPageOnce(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		pages := make([][]entity.UsageRecord, n)
		for i := range pages {
			pages[i] = []entity.UsageRecord{usage("vm", "1")}
		}
		repo := newFakeConsumption().withPages("202401", pages...)

		p := NewUsagePaginator(repo, "202401", 0)
		got := 0
		for p.HasMorePages() {
			_, err := p.NextPage(context.Background())
			require.NoError(t, err)
			got++
		}

		assert.Equal(t, n, got)
		assert.Equal(t, n, repo.callCount("202401"))
		assert.Equal(t, n, p.PagesFetched())
	}
}

func TestUsagePaginator_NextPageAfterLastPage(t *testing.T) {
	repo := newFakeConsumption().withPages("202401", []entity.UsageRecord{usage("vm", "1")})
	p := NewUsagePaginator(repo, "202401", 0)

	_, err := p.NextPage(context.Background())
	require.NoError(t, err)
	assert.False(t, p.HasMorePages())

	_, err = p.NextPage(context.Background())
	assert.ErrorIs(t, err, ErrNoMorePages)
	assert.Equal(t, 1, repo.callCount("202401"))
}

func TestUsagePaginator_PropagatesErrors(t *testing.T) {
	boom := errors.New("429 too many requests")
	repo := newFakeConsumption().withPages("202401",
		[]entity.UsageRecord{usage("vm", "1")},
		[]entity.UsageRecord{usage("vm", "1")},
	)
	repo.failOn, repo.failErr = "202401/1", boom

	p := NewUsagePaginator(repo, "202401", 0)
	_, err := p.NextPage(context.Background())
	require.NoError(t, err)

	_, err = p.NextPage(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "page 2")
	assert.False(t, p.HasMorePages())
}

type blockingConsumption struct{}

func (blockingConsumption) ListByPeriod(ctx context.Context, period string) (entity.UsagePage, error) {
	<-ctx.Done()
	return entity.UsagePage{}, ctx.Err()
}

func (blockingConsumption) ListByPeriodNext(ctx context.Context, nextLink string) (entity.UsagePage, error) {
	<-ctx.Done()
	return entity.UsagePage{}, ctx.Err()
}

func TestUsagePaginator_PageTimeout(t *testing.T) {
	p := NewUsagePaginator(blockingConsumption{}, "202401", 10*time.Millisecond)

	_, err := p.NextPage(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
