package main

import (
	"fmt"
	"os"

	"github.com/diillson/azure-finops-report-go/internal/adapter/driven/config"
	"github.com/diillson/azure-finops-report-go/internal/adapter/driven/export"
	"github.com/diillson/azure-finops-report-go/internal/adapter/driven/factory"
	"github.com/diillson/azure-finops-report-go/internal/adapter/driven/github"
	"github.com/diillson/azure-finops-report-go/internal/adapter/driving/cli"
	"github.com/diillson/azure-finops-report-go/internal/application/usecase"
	"github.com/diillson/azure-finops-report-go/pkg/console"
	"github.com/diillson/azure-finops-report-go/pkg/version"
)

func main() {
	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	outputRepo := github.NewOutputRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, configRepo, outputRepo)

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		factory.NewFactory(),
		outputRepo,
		exportRepo,
		consoleImpl,
	)
	app.SetReportUseCase(reportUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
