package console

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/diillson/azure-finops-report-go/internal/shared/types"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct {
	// interactive is false on CI runners, where spinners are replaced by plain log lines.
	interactive bool
}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) && os.Getenv("CI") == ""
	if !interactive {
		color.NoColor = true
		pterm.DisableStyling()
	}
	return &Console{interactive: interactive}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	if !c.interactive {
		pterm.Info.Println(message)
		return &statusHandle{}
	}
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner == nil {
		pterm.Info.Println(message)
		return
	}
	h.spinner.UpdateText(message)
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayPeriodBars exibe um gráfico de barras comparando os períodos de cobrança.
func (c *Console) DisplayPeriodBars(periodCosts []types.PeriodCost) {
	fmt.Println("\n" + RenderPeriodBars(periodCosts))
}

// RenderPeriodBars renders the bar chart panel. Each bar after the first is
// coloured by its change against the previous period.
func RenderPeriodBars(periodCosts []types.PeriodCost) string {
	maxCost := 0.0
	for _, pc := range periodCosts {
		if pc.Cost > maxCost {
			maxCost = pc.Cost
		}
	}

	if maxCost == 0 {
		return pterm.Warning.Sprint("All costs are 0.00 for these periods")
	}

	tableData := pterm.TableData{
		{"Period", "Cost", "", "Change"},
	}

	var prevCost *float64
	for _, pc := range periodCosts {
		barLength := int((pc.Cost / maxCost) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prevCost != nil {
			change, barColor = changeCell(*prevCost, pc.Cost, bar)
		}

		tableData = append(tableData, []string{
			pc.Period,
			strings.TrimSpace(fmt.Sprintf("%.2f %s", pc.Cost, pc.Currency)),
			barColor,
			change,
		})

		currentCost := pc.Cost
		prevCost = &currentCost
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	return pterm.DefaultBox.WithTitle("Azure Cost by Billing Period").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
}

// changeCell formats the change column and colours the bar: red for growth,
// green for savings, yellow when flat.
func changeCell(prev, cur float64, bar string) (string, string) {
	if prev < 0.01 {
		if cur < 0.01 {
			return pterm.FgYellow.Sprint("0%"), pterm.FgYellow.Sprint(bar)
		}
		return pterm.FgRed.Sprint("N/A"), pterm.FgRed.Sprint(bar)
	}

	changePercent := ((cur - prev) / prev) * 100.0
	switch {
	case math.Abs(changePercent) < 0.01:
		return pterm.FgYellow.Sprint("0%"), pterm.FgYellow.Sprint(bar)
	case changePercent > 999:
		return pterm.FgRed.Sprint(">+999%"), pterm.FgRed.Sprint(bar)
	case changePercent < -999:
		return pterm.FgGreen.Sprint(">-999%"), pterm.FgGreen.Sprint(bar)
	case changePercent > 0:
		return pterm.FgRed.Sprintf("+%.2f%%", changePercent), pterm.FgRed.Sprint(bar)
	default:
		return pterm.FgGreen.Sprintf("%.2f%%", changePercent), pterm.FgGreen.Sprint(bar)
	}
}
