package azure

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
)

const (
	clientName    = "azure.AzureRepositoryImpl"
	moduleVersion = "v1.0.0"

	consumptionAPIVersion = "2019-01-01"
	billingAPIVersion     = "2018-03-01-preview"
)

// Credentials identifies the service principal used to query the subscription.
type Credentials struct {
	SubscriptionID string
	DirectoryID    string
	ClientID       string
	ClientSecret   string
}

// AzureRepositoryImpl implementa ConsumptionRepository e BillingRepository
// sobre a API REST do Azure Resource Manager.
type AzureRepositoryImpl struct {
	client         *arm.Client
	subscriptionID string
}

// NewAzureRepository autentica o service principal e cria o repositório.
// maxRetries configures the pipeline retry policy: zero keeps the SDK default, a negative value disables retries.
func NewAzureRepository(creds Credentials, maxRetries int) (*AzureRepositoryImpl, error) {
	cred, err := azidentity.NewClientSecretCredential(creds.DirectoryID, creds.ClientID, creds.ClientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure credential: %w", err)
	}

	options := &arm.ClientOptions{}
	if maxRetries != 0 {
		options.Retry = policy.RetryOptions{MaxRetries: int32(maxRetries)}
	}
	return newAzureRepository(cred, creds.SubscriptionID, options)
}

func newAzureRepository(cred azcore.TokenCredential, subscriptionID string, options *arm.ClientOptions) (*AzureRepositoryImpl, error) {
	client, err := arm.NewClient(clientName, moduleVersion, cred, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Resource Manager client: %w", err)
	}
	return &AzureRepositoryImpl{client: client, subscriptionID: subscriptionID}, nil
}

// ListByPeriod fetches the first usage details page of a billing period.
func (r *AzureRepositoryImpl) ListByPeriod(ctx context.Context, period string) (entity.UsagePage, error) {
	urlPath := fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Billing/billingPeriods/%s/providers/Microsoft.Consumption/usageDetails",
		url.PathEscape(r.subscriptionID), url.PathEscape(period))

	req, err := runtime.NewRequest(ctx, http.MethodGet, runtime.JoinPaths(r.client.Endpoint(), urlPath))
	if err != nil {
		return entity.UsagePage{}, err
	}
	query := req.Raw().URL.Query()
	query.Set("api-version", consumptionAPIVersion)
	req.Raw().URL.RawQuery = query.Encode()

	return r.doUsageRequest(req)
}

// ListByPeriodNext follows the nextLink returned with a previous page.
func (r *AzureRepositoryImpl) ListByPeriodNext(ctx context.Context, nextLink string) (entity.UsagePage, error) {
	req, err := runtime.NewRequest(ctx, http.MethodGet, nextLink)
	if err != nil {
		return entity.UsagePage{}, err
	}
	return r.doUsageRequest(req)
}

func (r *AzureRepositoryImpl) doUsageRequest(req *policy.Request) (entity.UsagePage, error) {
	req.Raw().Header["Accept"] = []string{"application/json"}

	resp, err := r.client.Pipeline().Do(req)
	if err != nil {
		return entity.UsagePage{}, err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return entity.UsagePage{}, runtime.NewResponseError(resp)
	}

	var result usageDetailsListResult
	if err := runtime.UnmarshalAsJSON(resp, &result); err != nil {
		return entity.UsagePage{}, fmt.Errorf("error decoding usage details: %w", err)
	}
	return result.toPage(), nil
}

// ListBillingPeriods returns the most recent billing periods, newest first.
func (r *AzureRepositoryImpl) ListBillingPeriods(ctx context.Context, top int) ([]entity.BillingPeriod, error) {
	urlPath := fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Billing/billingPeriods", url.PathEscape(r.subscriptionID))

	req, err := runtime.NewRequest(ctx, http.MethodGet, runtime.JoinPaths(r.client.Endpoint(), urlPath))
	if err != nil {
		return nil, err
	}
	query := req.Raw().URL.Query()
	query.Set("api-version", billingAPIVersion)
	if top > 0 {
		query.Set("$top", strconv.Itoa(top))
	}
	req.Raw().URL.RawQuery = query.Encode()
	req.Raw().Header["Accept"] = []string{"application/json"}

	resp, err := r.client.Pipeline().Do(req)
	if err != nil {
		return nil, err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return nil, runtime.NewResponseError(resp)
	}

	var result billingPeriodsListResult
	if err := runtime.UnmarshalAsJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("error decoding billing periods: %w", err)
	}
	return result.toPeriods(), nil
}

// parseDate accepts both plain dates and RFC 3339 timestamps.
func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}

// invoiceName strips the resource path from an invoice id.
func invoiceName(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
