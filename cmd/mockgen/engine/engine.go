package engine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agendas-mcp/internal/dataset"
)

type GeneratorConfig struct {
	Facilities    int
	Professionals int // per facility
	Year          int
	Month         time.Month
	SlotsPerDay   int
	Seed          uint64
	Now           time.Time

	// Progress, when set, is called once per generated professional.
	Progress func()
}

type specialty struct {
	name     string
	category string
}

var specialties = []specialty{
	{"Cardiologia", "Médica"},
	{"Clínica Geral", "Médica"},
	{"Dermatologia", "Médica"},
	{"Ginecologia", "Médica"},
	{"Pediatria", "Médica"},
	{"Psicologia", "Multiprofissional"},
	{"Fisioterapia", "Multiprofissional"},
	{"Nutrição", "Multiprofissional"},
	{"Odontologia", "Odontológica"},
}

var firstNames = []string{"Ana", "Bruno", "Carla", "Daniel", "Eduarda", "Felipe", "Gabriela", "Henrique", "Isabela", "João", "Larissa", "Marcos"}
var middleNames = []string{"Maria", "Luiz", "Cristina", "Augusto", "Beatriz", "Henrique", ""}
var lastNames = []string{"Souza", "Lima", "Oliveira", "Santos", "Pereira", "Costa", "Almeida", "Ferreira", "Ribeiro", "Carvalho"}

// Generate builds a synthetic month of slots. The same config always yields the same document.
func Generate(cfg GeneratorConfig) dataset.Document {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if cfg.Year == 0 {
		cfg.Year = cfg.Now.Year()
	}
	if cfg.Month == 0 {
		cfg.Month = cfg.Now.Month()
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	first := time.Date(cfg.Year, cfg.Month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	var rows []dataset.RawRecord
	for f := 0; f < cfg.Facilities; f++ {
		unit := fmt.Sprintf("Unidade %02d", f+1)

		for p := 0; p < cfg.Professionals; p++ {
			name := professionalName(rng)
			spec := specialties[rng.IntN(len(specialties))]
			// Each professional has a personal absence and blocking profile.
			absentRate := 0.05 + rng.Float64()*0.2
			occupied := 0.5 + rng.Float64()*0.4

			for d := 1; d <= days; d++ {
				date := first.AddDate(0, 0, d-1)
				if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
					continue
				}
				dayBlocked := rng.Float64() < 0.04

				for s := 0; s < cfg.SlotsPerDay; s++ {
					start := date.Add(8*time.Hour + time.Duration(s)*30*time.Minute)
					row := dataset.RawRecord{
						Unidade:                unit,
						Profissional:           name,
						Especialidade:          spec.name,
						CategoriaEspecialidade: spec.category,
						DataQuadro:             date.Format("2006-01-02"),
						HoraInicio:             start.Format("15:04"),
					}

					switch {
					case dayBlocked || rng.Float64() < 0.03:
						row.SituacaoHorario = "Bloqueado"
						row.StatusFinal = "BLOQUEADO"
					case rng.Float64() < occupied:
						row.SituacaoHorario = "Agendado"
						row.StatusMonitoramento = outcome(rng, start, cfg.Now, absentRate)
						row.StatusFinal = strings.ToUpper(row.StatusMonitoramento)
					default:
						row.SituacaoHorario = "Livre"
						row.StatusFinal = "LIVRE"
					}
					rows = append(rows, row)
				}
			}
			if cfg.Progress != nil {
				cfg.Progress()
			}
		}
	}

	return dataset.Document{
		Meta: &dataset.Meta{
			TotalRecords: len(rows),
			GeneratedAt:  cfg.Now.Format("2006-01-02T15:04:05"),
		},
		Dados: rows,
	}
}

// outcome leaves future appointments pending.
func outcome(rng *rand.Rand, start, now time.Time, absentRate float64) string {
	if start.After(now) {
		return "Aguardando"
	}
	if rng.Float64() < absentRate {
		return "Ausente"
	}
	return "Realizado"
}

func professionalName(rng *rand.Rand) string {
	parts := []string{firstNames[rng.IntN(len(firstNames))]}
	if m := middleNames[rng.IntN(len(middleNames))]; m != "" {
		parts = append(parts, m)
	}
	parts = append(parts, lastNames[rng.IntN(len(lastNames))])
	return strings.Join(parts, " ")
}

// Save writes the document as indented JSON, creating parent directories.
func Save(path string, doc dataset.Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return w.Flush()
}
