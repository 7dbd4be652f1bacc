package visuals

import (
	"fmt"
	"math"
	"strings"

	"glpi-insights/internal/forecast"
	"glpi-insights/internal/stats"
)

// Mermaid xychart starts overlapping its labels past this many categories.
const maxBars = 20

// GenerateStatusPie creates a Mermaid pie chart of the status distribution.
func GenerateStatusPie(dist []stats.Count) string {
	if len(dist) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("pie title Distribuição por Status\n")
	for _, c := range dist {
		sb.WriteString(fmt.Sprintf("    %s : %d\n", quote(c.Key), c.Count))
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateMonthlyVolumeChart creates a Mermaid bar chart of the monthly volume.
// When trend is non-nil its fitted line is drawn over the bars.
func GenerateMonthlyVolumeChart(series []stats.MonthPoint, trend *forecast.Trend) string {
	if len(series) == 0 {
		return ""
	}

	var labels []string
	var values []string
	maxVal := 0.0
	for _, p := range series {
		labels = append(labels, quote(p.Month))
		values = append(values, fmt.Sprintf("%d", p.Count))
		maxVal = math.Max(maxVal, float64(p.Count))
	}

	var fitted []string
	if trend != nil && len(trend.Fitted) == len(series) {
		for _, v := range trend.Fitted {
			fitted = append(fitted, fmt.Sprintf("%.1f", v))
			maxVal = math.Max(maxVal, v)
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Volume Mensal de Chamados\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Chamados\" 0 --> %d\n", yMax(maxVal)))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	if len(fitted) > 0 {
		sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(fitted, ", ")))
	}
	sb.WriteString("```")
	return sb.String()
}

// GenerateCountBarChart creates a Mermaid bar chart from a frequency table, keeping the first maxBars rows.
func GenerateCountBarChart(title, axis string, counts []stats.Count) string {
	if len(counts) == 0 {
		return ""
	}
	if len(counts) > maxBars {
		counts = counts[:maxBars]
	}

	var labels []string
	var values []string
	maxVal := 0
	for _, c := range counts {
		labels = append(labels, quote(c.Key))
		values = append(values, fmt.Sprintf("%d", c.Count))
		maxVal = max(maxVal, c.Count)
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title %s\n", quote(title)))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis %s 0 --> %d\n", quote(axis), yMax(float64(maxVal))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateTopCategoriesChart creates a Mermaid bar chart of the top categories.
func GenerateTopCategoriesChart(counts []stats.Count) string {
	return GenerateCountBarChart("Top Categorias", "Chamados", counts)
}

// GenerateWeekdayChart creates a Mermaid bar chart of the volume per weekday.
func GenerateWeekdayChart(counts []stats.Count) string {
	return GenerateCountBarChart("Chamados por Dia da Semana", "Chamados", counts)
}

// GenerateTechnicianSLAChart creates a Mermaid bar chart of the SLA percentage per technician.
func GenerateTechnicianSLAChart(ranking []stats.TechnicianSLA) string {
	if len(ranking) == 0 {
		return ""
	}

	var labels []string
	var values []string
	for _, r := range ranking {
		// Replace spaces to help mermaid rendering
		labels = append(labels, quote(strings.ReplaceAll(r.Technician, " ", "_")))
		values = append(values, fmt.Sprintf("%.1f", r.Percent))
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"SLA por Técnico (<= %.0fh)\"\n", stats.SLAHours))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"% no SLA\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// quote wraps a label for Mermaid, which has no escape for double quotes.
func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "'") + "\""
}

func yMax(maxVal float64) int {
	return int(math.Ceil(math.Max(1, maxVal*1.2)))
}
