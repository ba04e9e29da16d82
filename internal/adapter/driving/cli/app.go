package cli

import (
	"context"
	"os"

	"github.com/diillson/azure-finops-report-go/internal/application/usecase"
	"github.com/diillson/azure-finops-report-go/internal/domain/repository"
	"github.com/diillson/azure-finops-report-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	configRepo    repository.ConfigRepository
	inputs        inputSource
	getenv        func(string) string
	version       string
	quiet         bool
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, inputs repository.OutputRepository) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
		inputs:     inputs,
		getenv:     os.Getenv,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:          "azure-finops-report",
		Short:        "Azure cost report for the last two finished billing periods",
		Version:      formattedVersion,
		RunE:         app.runCommand,
		SilenceUsage: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Azure FinOps Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.String("subscription-id", "", "Azure subscription to report on")
	flags.String("directory-id", "", "Azure AD directory (tenant) of the service principal")
	flags.String("client-id", "", "Service principal application id")
	flags.String("client-secret", "", "Service principal secret")
	flags.Bool("disable-issue", false, "Do not publish the report issue, only emit outputs")
	flags.StringSliceP("include-tags", "g", nil, "Tag columns to add to the current period report (comma-separated)")
	flags.String("tag-values", "", "How tag columns are filled: owner (every column reads the owner tag) or column")
	flags.String("github-token", "", "Token used to create the report issue (default: $GITHUB_TOKEN)")
	flags.String("repository", "", "Repository for the report issue, owner/name (default: $GITHUB_REPOSITORY)")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf (default: csv)")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("archive-bucket", "", "S3 bucket to archive the JSON reports to")
	flags.String("archive-prefix", "", "Key prefix for archived reports")
	flags.String("pushgateway-url", "", "Prometheus Pushgateway to push report metrics to")
	flags.Duration("page-timeout", 0, "Timeout for each usage page request, e.g. 30s (default: none)")
	flags.Int("max-retries", 0, "Retries for each Azure request (default: SDK default)")
	flags.BoolP("quiet", "q", false, "Do not display the banner")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	app.quiet, _ = cmd.Flags().GetBool("quiet")
	if !app.quiet {
		displayWelcomeBanner(app.version)

		// Verifica a versão mais recente disponível
		go version.CheckLatestVersion(app.version)
	}

	cliArgs, err := app.parseArgs(cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return app.reportUseCase.RunReport(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
