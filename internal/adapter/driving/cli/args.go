package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/azure-finops-report-go/internal/shared/types"
	"github.com/spf13/pflag"
)

type inputSource interface {
	GetInput(name string) string
}

// resolver looks a setting up in order: changed flag, action input,
// environment variable, config file.
type resolver struct {
	flags  *pflag.FlagSet
	inputs inputSource
	getenv func(string) string
}

func (r resolver) lookup(flag, input string) (string, bool) {
	if f := r.flags.Lookup(flag); f != nil && f.Changed {
		return f.Value.String(), true
	}
	if r.inputs != nil {
		if v := r.inputs.GetInput(input); v != "" {
			return v, true
		}
	}
	if v := strings.TrimSpace(r.getenv(input)); v != "" {
		return v, true
	}
	return "", false
}

func (r resolver) str(flag, input, fileValue string) string {
	if v, ok := r.lookup(flag, input); ok {
		return v
	}
	return fileValue
}

func (r resolver) boolean(flag, input string, fileValue bool) (bool, error) {
	v, ok := r.lookup(flag, input)
	if !ok {
		return fileValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid value %q for %s: %w", v, input, err)
	}
	return b, nil
}

func (r resolver) list(flag, input string, fileValue []string) []string {
	if f := r.flags.Lookup(flag); f != nil && f.Changed {
		values, _ := r.flags.GetStringSlice(flag)
		return cleanList(values)
	}
	if v, ok := r.lookup(flag, input); ok {
		return cleanList(strings.Split(v, ","))
	}
	return cleanList(fileValue)
}

func (r resolver) integer(flag, input string, fileValue int) (int, error) {
	v, ok := r.lookup(flag, input)
	if !ok {
		return fileValue, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s: %w", v, input, err)
	}
	return i, nil
}

func (r resolver) duration(flag, input, fileValue string) (time.Duration, error) {
	v, ok := r.lookup(flag, input)
	if !ok {
		v = fileValue
	}
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s: %w", v, input, err)
	}
	return d, nil
}

// cleanList trims the values and drops empty and repeated entries.
func cleanList(values []string) []string {
	var cleaned []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" && !slices.Contains(cleaned, v) {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}

// parseArgs resolves every setting into a CLIArgs struct.
func (app *CLIApp) parseArgs(flags *pflag.FlagSet) (*types.CLIArgs, error) {
	r := resolver{flags: flags, inputs: app.inputs, getenv: app.getenv}

	fileCfg := &types.Config{}
	if configFile := r.str("config-file", "configFile", ""); configFile != "" {
		loaded, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		fileCfg = loaded
	}

	args := &types.CLIArgs{
		ConfigFile:     r.str("config-file", "configFile", ""),
		SubscriptionID: r.str("subscription-id", "subscriptionId", fileCfg.SubscriptionID),
		DirectoryID:    r.str("directory-id", "directoryId", fileCfg.DirectoryID),
		ClientID:       r.str("client-id", "clientId", fileCfg.ClientID),
		ClientSecret:   r.str("client-secret", "clientSecret", fileCfg.ClientSecret),
		IncludeTags:    r.list("include-tags", "includeTags", fileCfg.IncludeTags),
		TagValues:      r.str("tag-values", "tagValues", fileCfg.TagValues),
		GitHubToken:    r.str("github-token", "githubToken", ""),
		Repository:     r.str("repository", "repository", fileCfg.Repository),
		ReportName:     r.str("report-name", "reportName", fileCfg.ReportName),
		ReportType:     r.list("report-type", "reportType", fileCfg.ReportType),
		Dir:            r.str("dir", "dir", fileCfg.Dir),
		ArchiveBucket:  r.str("archive-bucket", "archiveBucket", fileCfg.ArchiveBucket),
		ArchivePrefix:  r.str("archive-prefix", "archivePrefix", fileCfg.ArchivePrefix),
		PushgatewayURL: r.str("pushgateway-url", "pushgatewayUrl", fileCfg.PushgatewayURL),
	}

	var err error
	if args.DisableIssue, err = r.boolean("disable-issue", "disableIssue", fileCfg.DisableIssue); err != nil {
		return nil, err
	}
	if args.PageTimeout, err = r.duration("page-timeout", "pageTimeout", fileCfg.PageTimeout); err != nil {
		return nil, err
	}
	if args.MaxRetries, err = r.integer("max-retries", "maxRetries", fileCfg.MaxRetries); err != nil {
		return nil, err
	}

	if args.GitHubToken == "" {
		args.GitHubToken = app.getenv("GITHUB_TOKEN")
	}
	if args.Repository == "" {
		args.Repository = app.getenv("GITHUB_REPOSITORY")
	}
	if len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}

	// Set default directory to current working directory if not specified
	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}
