package cli

import (
	"fmt"

	"github.com/diillson/azure-finops-report-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
     ___                          _______ _       ____            
    / _ \                        |  ____(_)     / __ \           
   / /_\ \_____   _ _ __ ___     | |__   _ _ __ | |  | |_ __  ___ 
   |  _  |_  / | | | '__/ _ \    |  __| | | '_ \| |  | | '_ \/ __|
   | | | |/ /| |_| | | |  __/    | |    | | | | | |__| | |_) \__ \
   \_| |_/___|\__,_|_|  \___|    |_|    |_|_| |_|\____/| .__/|___/
                                                       | |        
                                                       |_|        
        `
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(blue(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(cyan(fmt.Sprintf("Azure FinOps Report CLI (v%s)", formattedVersion)))
}
