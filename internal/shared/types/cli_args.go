package types

import (
	"fmt"
	"slices"
	"time"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
)

// CLIArgs represents the resolved run settings (flags, action inputs, environment and config file).
type CLIArgs struct {
	ConfigFile     string
	SubscriptionID string
	DirectoryID    string
	ClientID       string
	ClientSecret   string
	DisableIssue   bool
	IncludeTags    []string
	TagValues      string
	GitHubToken    string
	Repository     string
	ReportName     string
	ReportType     []string
	Dir            string
	ArchiveBucket  string
	ArchivePrefix  string
	PushgatewayURL string
	PageTimeout    time.Duration
	MaxRetries     int
}

// Tag value extraction modes.
const (
	// TagValuesOwner fills every requested tag column with the "owner" tag.
	TagValuesOwner = "owner"
	// TagValuesColumn fills each tag column with the tag of the same name.
	TagValuesColumn = "column"
)

// Validate checks the settings required to query the billing API.
func (a *CLIArgs) Validate() error {
	if a.SubscriptionID == "" || a.DirectoryID == "" || a.ClientID == "" || a.ClientSecret == "" {
		return ErrMissingCredentials
	}
	if a.TagValues != "" && a.TagValues != TagValuesOwner && a.TagValues != TagValuesColumn {
		return ErrInvalidTagValues
	}
	for _, tag := range a.IncludeTags {
		if slices.Contains(entity.ResourceColumns, tag) {
			return fmt.Errorf("%w: %q", ErrReservedTagColumn, tag)
		}
	}
	return nil
}
