package commands

import (
	"fmt"
	"time"

	"glpi-insights/internal/stats"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var summaryFilters filterFlags

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the headline KPIs and the status distribution as terminal tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, source, err := summaryFilters.input(time.Now())
		if err != nil {
			return err
		}

		headline := stats.CalculateHeadline(in.Tickets)
		sla := stats.CalculateSLACompliance(in.Tickets)
		backlog := stats.CalculateBacklog(in.Tickets, in.Now)

		kpis := newTable("Indicador", "Valor").
			Row("Total de chamados", humanize.Comma(int64(headline.Total))).
			Row("Tempo médio de resolução", hours(headline.MeanHours)).
			Row("SLA (≤8h) sobre resolvidos", percent(sla.Percent)).
			Row("Chamados por técnico", number(headline.TicketsPerTechnician)).
			Row("Pendentes", humanize.Comma(int64(backlog.Total)))

		status := newTable("Status", "Chamados", "%")
		for _, c := range stats.StatusDistribution(in.Tickets) {
			status.Row(c.Key, humanize.Comma(int64(c.Count)), fmt.Sprintf("%.1f%%", c.Percent))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("GLPI Insights · "+source))
		fmt.Fprintln(out, kpis.String())
		fmt.Fprintln(out, status.String())
		return nil
	},
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func hours(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return humanize.FormatFloat("#,###.#", *v) + " h"
}

func percent(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func number(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return humanize.FormatFloat("#,###.#", *v)
}

func init() {
	summaryFilters.register(summaryCmd)
}
