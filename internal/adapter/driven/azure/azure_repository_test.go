package azure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) (*AzureRepositoryImpl, *httptest.Server) {
	t.Helper()
	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	options := &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Cloud: cloud.Configuration{
				ActiveDirectoryAuthorityHost: srv.URL,
				Services: map[cloud.ServiceName]cloud.ServiceConfiguration{
					cloud.ResourceManager: {Audience: "https://management.core.windows.net/", Endpoint: srv.URL},
				},
			},
			Transport: srv.Client(),
			Retry:     policy.RetryOptions{MaxRetries: -1},
		},
	}
	repo, err := newAzureRepository(&azfake.TokenCredential{}, "sub-1", options)
	require.NoError(t, err)
	return repo, srv
}

func TestListByPeriod_FollowsNextLink(t *testing.T) {
	var srvURL string
	repo, srv := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/billingPeriods/202401/providers/Microsoft.Consumption/usageDetails") && r.URL.Query().Get("$skiptoken") == "":
			assert.Equal(t, "/subscriptions/sub-1/providers/Microsoft.Billing/billingPeriods/202401/providers/Microsoft.Consumption/usageDetails", r.URL.Path)
			assert.Equal(t, consumptionAPIVersion, r.URL.Query().Get("api-version"))
			w.Write([]byte(`{"value":[{"id":"1","tags":{"owner":"alice","empty":null},"properties":{
				"instanceName":"vm-a","pretaxCost":10.125,"instanceLocation":"westeurope",
				"consumedService":"Microsoft.Compute","currency":"EUR"}}],
				"nextLink":"` + srvURL + r.URL.Path + `?api-version=2019-01-01&$skiptoken=abc"}`))
		case r.URL.Query().Get("$skiptoken") == "abc":
			w.Write([]byte(`{"value":[{"id":"2","properties":{"instanceName":"vm-b","pretaxCost":1,"currency":"EUR"}}]}`))
		default:
			http.NotFound(w, r)
		}
	})
	srvURL = srv.URL

	page, err := repo.ListByPeriod(context.Background(), "202401")
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "vm-a", page.Records[0].InstanceName)
	assert.True(t, page.Records[0].PretaxCost.Equal(decimal.RequireFromString("10.125")))
	assert.Equal(t, "EUR", page.Records[0].Currency)
	assert.Equal(t, map[string]string{"owner": "alice"}, page.Records[0].Tags)
	require.True(t, page.HasNext())

	next, err := repo.ListByPeriodNext(context.Background(), page.NextLink)
	require.NoError(t, err)
	require.Len(t, next.Records, 1)
	assert.Equal(t, "vm-b", next.Records[0].InstanceName)
	assert.Nil(t, next.Records[0].Tags)
	assert.False(t, next.HasNext())
}

func TestListByPeriod_ErrorStatus(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":"AuthorizationFailed","message":"no access"}}`))
	})

	_, err := repo.ListByPeriod(context.Background(), "202401")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AuthorizationFailed")
}

func TestListBillingPeriods(t *testing.T) {
	repo, _ := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscriptions/sub-1/providers/Microsoft.Billing/billingPeriods", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("$top"))
		assert.Equal(t, billingAPIVersion, r.URL.Query().Get("api-version"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value":[
			{"name":"202403","properties":{"billingPeriodStartDate":"2024-02-01","billingPeriodEndDate":"2024-02-29"}},
			{"name":"202402","properties":{"billingPeriodStartDate":"2024-01-01","billingPeriodEndDate":"2024-01-31",
				"invoiceIds":["/subscriptions/sub-1/providers/Microsoft.Billing/invoices/E2024"]}}]}`))
	})

	periods, err := repo.ListBillingPeriods(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.False(t, periods[0].IsFinished())
	assert.True(t, periods[1].IsFinished())
	assert.Equal(t, []string{"E2024"}, periods[1].InvoiceIDs)
	assert.Equal(t, 2024, periods[1].StartDate.Year())
}
