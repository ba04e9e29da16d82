package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
	"github.com/diillson/azure-finops-report-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// ExportToCSV writes one row per resource of both periods, current period first.
func (r *ExportRepositoryImpl) ExportToCSV(comparison entity.CostComparison, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	tagColumns := tagColumnNames(comparison.Current)
	headers := append([]string{"Period", "Instance Name", "Costs", "Location", "Service"}, tagColumns...)
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, report := range []entity.PeriodReport{comparison.Current, comparison.Previous} {
		for _, res := range report.Resources {
			record := []string{report.Period, res.InstanceName, res.Costs, res.InstanceLocation, res.Service}
			for i := range tagColumns {
				value := ""
				if i < len(res.Tags) {
					value = res.Tags[i].Value
				}
				record = append(record, value)
			}
			if err := writer.Write(record); err != nil {
				return "", fmt.Errorf("error writing CSV record: %w", err)
			}
		}
	}

	summary := [][]string{
		{comparison.Current.Period, "TOTAL", totalWithCurrency(comparison.Current), "", percentLabel(comparison.PercentChange)},
		{comparison.Previous.Period, "TOTAL", totalWithCurrency(comparison.Previous), "", ""},
	}
	for _, record := range summary {
		for len(record) < len(headers) {
			record = append(record, "")
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV summary: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(comparison entity.CostComparison, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(comparison); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(comparison entity.CostComparison, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	current, previous := comparison.Current, comparison.Previous

	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Azure costs report: period %s", current.Period)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
	pdf.Cell(0, 8, "Cost Summary")
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	costTableWidth := 95.0
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(costTableWidth, 7, tr("Period "+previous.Period), "B", 0, "L", false, 0, "")
	pdf.CellFormat(costTableWidth, 7, tr("Period "+current.Period), "B", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(costTableWidth, 12, tr(totalWithCurrency(previous)), "", 0, "L", false, 0, "")

	changeText := ""
	originalTextColorR, originalTextColorG, originalTextColorB := pdf.GetTextColor()
	if comparison.PercentChange != nil {
		val := *comparison.PercentChange
		if val > 0.01 {
			pdf.SetTextColor(192, 0, 0)
			changeText = fmt.Sprintf("  (+%.2f%%)", val)
		} else if val < -0.01 {
			pdf.SetTextColor(0, 128, 0)
			changeText = fmt.Sprintf("  (%.2f%%)", val)
		} else {
			changeText = "  (0.00%)"
		}
	} else {
		changeText = "  (N/A)"
	}

	valueStr := totalWithCurrency(current)
	pdf.Cell(pdf.GetStringWidth(valueStr), 12, tr(valueStr))
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(costTableWidth-pdf.GetStringWidth(valueStr), 12, tr(changeText), "", 1, "L", false, 0, "")
	pdf.SetTextColor(originalTextColorR, originalTextColorG, originalTextColorB)

	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(costTableWidth, 6, tr(fmt.Sprintf("%d resources", previous.TotalNumberOfResources)), "", 0, "L", false, 0, "")
	pdf.CellFormat(costTableWidth, 6, tr(fmt.Sprintf("%d resources", current.TotalNumberOfResources)), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
	pdf.Cell(0, 8, tr("Resources in period "+current.Period))
	pdf.Ln(7)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	if len(current.Resources) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, "No resources were billed in this period.")
	} else {
		columns := current.Resources[0].Columns()
		width := 190.0 / float64(len(columns))

		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(240, 240, 240)
		for _, column := range columns {
			pdf.CellFormat(width, 6, tr(column), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 7)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, res := range current.Resources {
			for _, value := range res.Values() {
				pdf.CellFormat(width, 5, tr(truncate(value, int(width/1.6))), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func tagColumnNames(report entity.PeriodReport) []string {
	if len(report.Resources) == 0 {
		return nil
	}
	names := make([]string, 0, len(report.Resources[0].Tags))
	for _, tag := range report.Resources[0].Tags {
		names = append(names, tag.Name)
	}
	return names
}

func totalWithCurrency(report entity.PeriodReport) string {
	if report.Currency == "" {
		return report.TotalCosts
	}
	return report.TotalCosts + " " + report.Currency
}

func truncate(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// percentLabel formats the change column of the CSV summary rows.
func percentLabel(change *float64) string {
	if change == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*change, 'f', 2, 64) + "%"
}
