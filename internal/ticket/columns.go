package ticket

// Header names of the GLPI semicolon export.
const (
	ColID          = "ID"
	ColTitle       = "Título"
	ColStatus      = "Status"
	ColPriority    = "Prioridade"
	ColCategory    = "Categoria"
	ColTechnician  = "Atribuído - Técnico"
	ColRequester   = "Requerente - Requerente"
	ColLocation    = "Localização"
	ColOpenedDate  = "Data Abertura"
	ColOpenedHour  = "Hora Abertura"
	ColUpdatedDate = "Data Atualização"
	ColSLADate     = "Data SLA"
)

// KnownColumns lists every column the deriver understands, in export order.
var KnownColumns = []string{
	ColID, ColTitle, ColStatus, ColPriority, ColCategory, ColTechnician,
	ColRequester, ColLocation, ColOpenedDate, ColOpenedHour, ColUpdatedDate, ColSLADate,
}

// Columns is the set of header names present in a load.
type Columns map[string]bool

// NewColumns builds a column set from a header row.
func NewColumns(header []string) Columns {
	cols := make(Columns, len(header))
	for _, h := range header {
		cols[h] = true
	}
	return cols
}

// Has reports whether the named column was present in the source header.
func (c Columns) Has(name string) bool {
	return c[name]
}

// Missing returns the known columns absent from the set.
func (c Columns) Missing() []string {
	var missing []string
	for _, name := range KnownColumns {
		if !c[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// Record is one raw data row keyed by header name.
type Record map[string]string

// NewRecord zips a header with a row. Short rows leave trailing columns empty.
func NewRecord(header, row []string) Record {
	rec := make(Record, len(header))
	for i, h := range header {
		if i < len(row) {
			rec[h] = row[i]
		} else {
			rec[h] = ""
		}
	}
	return rec
}
