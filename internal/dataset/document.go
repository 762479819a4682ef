package dataset

import "agendas-mcp/internal/stats"

// Document is the published dataset: `{ "meta": {...}, "dados": [...] }`.
type Document struct {
	Meta  *Meta       `json:"meta,omitempty"`
	Dados []RawRecord `json:"dados"`
}

// Meta describes how the document was produced.
type Meta struct {
	TotalRecords int    `json:"total_registros,omitempty"`
	GeneratedAt  string `json:"data_geracao,omitempty"`
}

// RawRecord is one row as exported by the spreadsheet converter. Missing columns decode as
// empty strings.
type RawRecord struct {
	Unidade                string `json:"Unidade" jsonschema:"facility (organizational unit)"`
	Profissional           string `json:"Profissional" jsonschema:"professional display name"`
	Especialidade          string `json:"Especialidade" jsonschema:"specialty"`
	CategoriaEspecialidade string `json:"CategoriaEspecialidade" jsonschema:"specialty category"`
	StatusMonitoramento    string `json:"StatusMonitoramento" jsonschema:"outcome of a scheduled slot"`
	SituacaoHorario        string `json:"Situacao_Horario" jsonschema:"slot state: Agendado, Livre or Bloqueado"`
	StatusFinal            string `json:"Status_Final,omitempty"`
	DataQuadro             string `json:"DataQuadro" jsonschema:"calendar date YYYY-MM-DD"`
	HoraInicio             string `json:"HoraInicio,omitempty"`
}

// Records converts the raw rows into canonical records using vocab.
func (d *Document) Records(vocab Vocabulary) []stats.Record {
	out := make([]stats.Record, len(d.Dados))
	for i, raw := range d.Dados {
		out[i] = raw.Record(vocab)
	}
	return out
}

// Record converts one raw row.
func (r RawRecord) Record(vocab Vocabulary) stats.Record {
	return stats.Record{
		Facility:          r.Unidade,
		Professional:      r.Profissional,
		Specialty:         r.Especialidade,
		SpecialtyCategory: r.CategoriaEspecialidade,
		MonitoringStatus:  vocab.Outcome(r.StatusMonitoramento),
		SlotState:         vocab.SlotState(r.SituacaoHorario),
		FinalStatus:       r.StatusFinal,
		CalendarDate:      r.DataQuadro,
		StartTime:         r.HoraInicio,
	}
}
