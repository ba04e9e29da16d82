package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	SubscriptionID string   `json:"subscriptionId" yaml:"subscriptionId" toml:"subscriptionId"`
	DirectoryID    string   `json:"directoryId" yaml:"directoryId" toml:"directoryId"`
	ClientID       string   `json:"clientId" yaml:"clientId" toml:"clientId"`
	ClientSecret   string   `json:"clientSecret" yaml:"clientSecret" toml:"clientSecret"`
	DisableIssue   bool     `json:"disableIssue" yaml:"disableIssue" toml:"disableIssue"`
	IncludeTags    []string `json:"includeTags" yaml:"includeTags" toml:"includeTags"`
	TagValues      string   `json:"tagValues" yaml:"tagValues" toml:"tagValues"`
	Repository     string   `json:"repository" yaml:"repository" toml:"repository"`
	ReportName     string   `json:"reportName" yaml:"reportName" toml:"reportName"`
	ReportType     []string `json:"reportType" yaml:"reportType" toml:"reportType"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	ArchiveBucket  string   `json:"archiveBucket" yaml:"archiveBucket" toml:"archiveBucket"`
	ArchivePrefix  string   `json:"archivePrefix" yaml:"archivePrefix" toml:"archivePrefix"`
	PushgatewayURL string   `json:"pushgatewayUrl" yaml:"pushgatewayUrl" toml:"pushgatewayUrl"`
	PageTimeout    string   `json:"pageTimeout" yaml:"pageTimeout" toml:"pageTimeout"`
	MaxRetries     int      `json:"maxRetries" yaml:"maxRetries" toml:"maxRetries"`
}
