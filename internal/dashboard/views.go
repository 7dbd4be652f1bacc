package dashboard

import (
	"glpi-insights/internal/forecast"
	"glpi-insights/internal/stats"
	"glpi-insights/internal/ticket"
)

// Tab labels.
const (
	TabKPIs        = "1. KPIs"
	TabTemporal    = "2. Temporal"
	TabCategory    = "3. Categoria"
	TabTechnicians = "4. Técnicos"
	TabRequesters  = "5. Requerentes"
	TabLocation    = "6. Localização"
	TabPriority    = "7. Prioridade"
	TabStatus      = "8. Status"
	TabPredictive  = "9. Preditiva"
	TabQuality     = "10. Qualidade"
	TabSpecific    = "11. Específicas"
	TabDetails     = "Detalhes"
)

// Technician productivity tables show at most this many rows.
const technicianRows = 15

var catalog = []View{
	define("headline", TabKPIs, "Indicadores gerais", func(in Input) stats.Headline {
		return stats.CalculateHeadline(in.Tickets)
	}),
	define("status_distribution", TabKPIs, "Taxa de resolução por status", func(in Input) []stats.Count {
		return stats.StatusDistribution(in.Tickets)
	}),
	define("resolution_summary", TabKPIs, "Tempo médio de resolução", func(in Input) stats.ResolutionSummary {
		return stats.CalculateResolutionSummary(in.Tickets)
	}),
	define("sla_compliance", TabKPIs, "SLA compliance (8h)", func(in Input) stats.SLACompliance {
		return stats.CalculateSLACompliance(in.Tickets)
	}),
	define("technician_productivity", TabKPIs, "Produtividade por técnico", func(in Input) []stats.TechnicianStats {
		return truncate(stats.TechnicianProductivity(in.Tickets), 10)
	}),
	define("technician_efficiency", TabKPIs, "Eficiência por técnico (chamados/hora)", func(in Input) []stats.TechnicianStats {
		return stats.TechnicianEfficiency(in.Tickets, 10)
	}),

	define("monthly_volume", TabTemporal, "Volume mensal", func(in Input) []stats.MonthPoint {
		return stats.MonthlySeries(in.Tickets)
	}),
	define("hourly_volume", TabTemporal, "Chamados por hora do dia", func(in Input) []stats.Count {
		return stats.HourlyVolume(in.Tickets)
	}),
	define("weekday_volume", TabTemporal, "Chamados por dia da semana", func(in Input) []stats.Count {
		return stats.WeekdayVolume(in.Tickets)
	}),
	define("resolution_histogram", TabTemporal, "Distribuição do tempo de resolução (<100h)", func(in Input) []stats.Bin {
		return stats.ResolutionHistogram(in.Tickets)
	}),
	define("resolution_by_status", TabTemporal, "Tempo de resolução por status (<100h)", func(in Input) []stats.BoxSummary {
		return stats.ResolutionByStatus(in.Tickets)
	}),

	define("top_categories", TabCategory, "Top 10 categorias", func(in Input) []stats.Count {
		return stats.TopN(stats.CountBy(in.Tickets, stats.ByCategory), stats.TopCategories)
	}),
	define("category_share", TabCategory, "Distribuição por categoria", func(in Input) []stats.Count {
		return stats.TopNWithOther(stats.CountBy(in.Tickets, stats.ByCategory), stats.CategoryShareTop)
	}),
	define("critical_categories", TabCategory, "Categorias críticas (maior tempo médio)", func(in Input) []stats.CategoryMean {
		return stats.CriticalCategories(in.Tickets, 10)
	}),
	define("category_recurrence", TabCategory, "Recorrência por categoria", func(in Input) []stats.CategoryRecurrence {
		return stats.CalculateCategoryRecurrence(in.Tickets, 10)
	}),
	define("category_month_heatmap", TabCategory, "Categoria x mês", func(in Input) stats.CrossTab {
		return stats.CategoryByMonth(in.Tickets, stats.TopCategories)
	}),
	define("category_details", TabCategory, "Detalhes por categoria", func(in Input) []stats.CategoryDetail {
		return stats.CategoryDetails(in.Tickets)
	}),

	define("technician_workload", TabTechnicians, "Produtividade individual e desvio da média", func(in Input) []stats.TechnicianStats {
		return truncate(stats.TechnicianProductivity(in.Tickets), technicianRows)
	}),
	define("technician_specialization", TabTechnicians, "Especialização por técnico", func(in Input) []stats.Specialization {
		return stats.TechnicianSpecialization(in.Tickets, 10)
	}),
	define("technician_sla_ranking", TabTechnicians, "Ranking de técnicos por SLA", func(in Input) []stats.TechnicianSLA {
		return stats.TechnicianSLARanking(in.Tickets)
	}),

	define("top_requesters", TabRequesters, "Top 20 requerentes", func(in Input) []stats.Count {
		return stats.TopN(stats.CountBy(in.Tickets, stats.ByRequester), stats.TopRequesters)
	}),
	define("requester_recurrence", TabRequesters, "Usuários recorrentes", func(in Input) []stats.RequesterRecurrence {
		return stats.CalculateRequesterRecurrence(in.Tickets, 15)
	}),
	define("top_locations", TabRequesters, "Top 15 localizações", func(in Input) []stats.Count {
		return stats.TopN(stats.CountBy(in.Tickets, stats.ByLocation), stats.TopLocations)
	}),
	define("location_requester", TabRequesters, "Requerentes por localização", func(in Input) []stats.LocationRequester {
		return stats.LocationRequesterPairs(in.Tickets, 30)
	}),

	define("location_analysis", TabLocation, "Análise por localização", func(in Input) []stats.LocationStats {
		return stats.LocationAnalysis(in.Tickets)
	}),
	define("location_category_heatmap", TabLocation, "Localização x categoria", func(in Input) stats.CrossTab {
		return stats.LocationByCategory(in.Tickets, stats.TopLocations, stats.TopCategories)
	}),

	define("priority_distribution", TabPriority, "Distribuição por prioridade", func(in Input) []stats.Count {
		return stats.PriorityDistribution(in.Tickets)
	}),
	define("priority_resolution", TabPriority, "Tempo médio por prioridade", func(in Input) []stats.PriorityMean {
		return stats.PriorityResolution(in.Tickets)
	}),
	define("priority_sla_violations", TabPriority, "Violações de SLA por prioridade", func(in Input) []stats.PriorityViolation {
		return stats.PrioritySLAViolations(in.Tickets)
	}),

	define("status_by_month", TabStatus, "Evolução de status por mês", func(in Input) []stats.SeriesPoint {
		return stats.StatusByMonth(in.Tickets)
	}),
	define("backlog", TabStatus, "Backlog de pendentes", func(in Input) stats.BacklogResult {
		return stats.CalculateBacklog(in.Tickets, in.Now)
	}),

	define("demand_forecast", TabPredictive, "Tendência e projeção (3 meses)", func(in Input) *forecast.Trend {
		return forecast.DemandForecast(in.Tickets)
	}),
	define("resource_sizing", TabPredictive, "Dimensionamento de equipe", func(in Input) forecast.Sizing {
		return forecast.ResourceSizing(in.Tickets)
	}),
	define("category_trend", TabPredictive, "Tendência das top 5 categorias", func(in Input) []stats.SeriesPoint {
		return stats.CategoryTrend(in.Tickets, 5)
	}),

	define("first_resolution", TabQuality, "Taxa de primeira resolução", func(in Input) stats.ReworkResult {
		return stats.Rework(in.Tickets)
	}),
	define("title_quality", TabQuality, "Qualidade das descrições", func(in Input) stats.TitleQualityResult {
		return stats.CalculateTitleQuality(in.Tickets)
	}),
	define("duplicates", TabQuality, "Chamados duplicados", func(in Input) []stats.Duplicate {
		return stats.Duplicates(in.Tickets)
	}),

	define("problem_types", TabSpecific, "Resumo por tipo de problema", func(in Input) []stats.ProblemType {
		return stats.ProblemTypes(in.Tickets, in.Rules.Types)
	}),
	define("printer_incidents", TabSpecific, "Incidentes de impressora por localização", func(in Input) stats.Breakdown {
		return stats.PrinterIncidents(in.Tickets, in.Rules)
	}),
	define("hardware_breakdown", TabSpecific, "Problemas de hardware", func(in Input) stats.Breakdown {
		return stats.HardwareBreakdown(in.Tickets, in.Rules)
	}),
	define("password_resets", TabSpecific, "Resets de senha por mês", func(in Input) stats.Breakdown {
		return stats.PasswordResets(in.Tickets, in.Rules)
	}),
	define("toner_requests", TabSpecific, "Solicitações de toner por localização", func(in Input) stats.Breakdown {
		return stats.TonerRequests(in.Tickets, in.Rules)
	}),

	define("ticket_details", TabDetails, "100 chamados mais recentes", func(in Input) []ticket.Ticket {
		return stats.RecentTickets(in.Tickets, stats.RecentLimit)
	}),
}

func truncate[T any](rows []T, limit int) []T {
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
