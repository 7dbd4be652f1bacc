package visuals

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"glpi-insights/internal/dashboard"
	"glpi-insights/internal/forecast"
	"glpi-insights/internal/stats"

	"github.com/dustin/go-humanize"
)

// Inline lists of scalars are cut after this many items.
const maxInline = 30

// ReportOptions controls the markdown report.
type ReportOptions struct {
	Title       string
	Source      string
	Charts      bool
	GeneratedAt time.Time
}

// WriteReport renders every view of the catalog as markdown, one section per tab.
func WriteReport(w io.Writer, in dashboard.Input, opts ReportOptions) error {
	var sb strings.Builder

	title := opts.Title
	if title == "" {
		title = "Dashboard GLPI"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	if opts.Source != "" {
		sb.WriteString(fmt.Sprintf("Fonte: `%s`  \n", opts.Source))
	}
	if !opts.GeneratedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Gerado em: %s  \n", opts.GeneratedAt.Format("02/01/2006 15:04")))
	}
	sb.WriteString(fmt.Sprintf("Chamados no filtro: %s\n", humanize.Comma(int64(len(in.Tickets)))))

	tab := ""
	for _, r := range dashboard.Compute(in, "") {
		if r.Tab != tab {
			tab = r.Tab
			sb.WriteString(fmt.Sprintf("\n## %s\n", tab))
		}
		sb.WriteString(fmt.Sprintf("\n### %s\n\n", r.Title))
		if opts.Charts {
			if chart := Chart(r); chart != "" {
				sb.WriteString(chart)
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString(Render(r.Data))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Chart returns the Mermaid chart drawn for a view, or "" when the view has none.
func Chart(r dashboard.Result) string {
	switch data := r.Data.(type) {
	case []stats.MonthPoint:
		return GenerateMonthlyVolumeChart(data, forecast.FitTrend(data))
	case []stats.TechnicianSLA:
		return GenerateTechnicianSLAChart(data)
	case []stats.Count:
		switch r.Name {
		case "status_distribution":
			return GenerateStatusPie(data)
		case "top_categories":
			return GenerateTopCategoriesChart(data)
		case "weekday_volume":
			return GenerateWeekdayChart(data)
		}
	}
	return ""
}

// Render formats a view result as markdown: slices of structs become tables,
// structs become field lists and undefined values read "N/A".
func Render(data any) string {
	var sb strings.Builder
	render(&sb, reflect.ValueOf(data))
	return sb.String()
}

func render(sb *strings.Builder, v reflect.Value) {
	v = deref(v)
	if !v.IsValid() {
		sb.WriteString("_Dados insuficientes._\n")
		return
	}
	if ct, ok := v.Interface().(stats.CrossTab); ok {
		renderCrossTab(sb, ct)
		return
	}

	switch v.Kind() {
	case reflect.Slice:
		if v.Len() == 0 {
			sb.WriteString("_Sem dados._\n")
			return
		}
		if deref(v.Index(0)).Kind() == reflect.Struct && !isTime(v.Index(0)) {
			renderTable(sb, v)
			return
		}
		sb.WriteString(cell(v))
		sb.WriteString("\n")
	case reflect.Struct:
		renderFields(sb, v)
	default:
		sb.WriteString(cell(v))
		sb.WriteString("\n")
	}
}

func renderTable(sb *strings.Builder, v reflect.Value) {
	fields := columns(v.Type().Elem())
	var names []string
	for _, f := range fields {
		names = append(names, f.name)
	}
	sb.WriteString("| " + strings.Join(names, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(names)) + "\n")
	for i := 0; i < v.Len(); i++ {
		row := deref(v.Index(i))
		var cells []string
		for _, f := range fields {
			if !row.IsValid() {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, cell(row.Field(f.index)))
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}

func renderFields(sb *strings.Builder, v reflect.Value) {
	var nested []field
	for _, f := range columns(v.Type()) {
		fv := v.Field(f.index)
		if isComposite(fv) {
			nested = append(nested, f)
			continue
		}
		sb.WriteString(fmt.Sprintf("- **%s**: %s\n", f.name, cell(fv)))
	}
	for _, f := range nested {
		sb.WriteString(fmt.Sprintf("\n**%s**\n\n", f.name))
		render(sb, v.Field(f.index))
	}
}

func renderCrossTab(sb *strings.Builder, ct stats.CrossTab) {
	if len(ct.Rows) == 0 || len(ct.Columns) == 0 {
		sb.WriteString("_Sem dados._\n")
		return
	}
	sb.WriteString("| | " + strings.Join(escapeAll(ct.Columns), " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat(" --- |", len(ct.Columns)+1) + "\n")
	for i, row := range ct.Rows {
		cells := []string{"**" + escape(row) + "**"}
		for _, n := range ct.Cells[i] {
			cells = append(cells, humanize.Comma(int64(n)))
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}

type field struct {
	name  string
	index int
}

func columns(t reflect.Type) []field {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var out []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		out = append(out, field{name: name, index: i})
	}
	return out
}

// isComposite reports whether a struct field needs its own block rather than a single cell.
func isComposite(v reflect.Value) bool {
	v = deref(v)
	if !v.IsValid() || isTime(v) {
		return false
	}
	switch v.Kind() {
	case reflect.Struct:
		return true
	case reflect.Slice:
		return v.Len() > 0 && deref(v.Index(0)).Kind() == reflect.Struct && !isTime(v.Index(0))
	}
	return false
}

func cell(v reflect.Value) string {
	v = deref(v)
	if !v.IsValid() {
		return "N/A"
	}
	if isTime(v) {
		return v.Interface().(time.Time).Format("02/01/2006 15:04")
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return humanize.Comma(v.Int())
	case reflect.Float32, reflect.Float64:
		return humanize.CommafWithDigits(v.Float(), 2)
	case reflect.String:
		return escape(v.String())
	case reflect.Bool:
		if v.Bool() {
			return "sim"
		}
		return "não"
	case reflect.Slice:
		var parts []string
		for i := 0; i < v.Len() && i < maxInline; i++ {
			parts = append(parts, cell(v.Index(i)))
		}
		if v.Len() > maxInline {
			parts = append(parts, fmt.Sprintf("… (+%d)", v.Len()-maxInline))
		}
		return strings.Join(parts, ", ")
	case reflect.Struct:
		var parts []string
		for _, f := range columns(v.Type()) {
			parts = append(parts, f.name+"="+cell(v.Field(f.index)))
		}
		return strings.Join(parts, " ")
	}
	return escape(fmt.Sprint(v.Interface()))
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

var timeType = reflect.TypeOf(time.Time{})

func isTime(v reflect.Value) bool {
	v = deref(v)
	return v.IsValid() && v.Type() == timeType
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func escapeAll(values []string) []string {
	out := make([]string, len(values))
	for i, s := range values {
		out[i] = escape(s)
	}
	return out
}
