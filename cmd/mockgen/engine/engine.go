package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"glpi-insights/internal/ticket"

	"github.com/klauspost/compress/gzip"
)

type GeneratorConfig struct {
	Scenario     string // "mild", "chaos" or "drift"
	Distribution string // "uniform" or "weibull"
	Count        int
	Months       int
	Seed         uint64
	Now          time.Time
}

var (
	technicians = []string{"Ana Souza", "Bruno Lima", "Carla Mendes", "Diego Rocha", "Elisa Prado", "Fábio Nunes"}
	requesters  = []string{"Carlos Alves", "Diana Costa", "Eduardo Melo", "Fernanda Reis", "Gustavo Pires", "Helena Dias", "Igor Matos", "Joana Freitas", "Lucas Teles", "Marina Brito"}
	locations   = []string{"Recepção", "Financeiro", "Faturamento", "UTI Adulto", "Centro Cirúrgico", "Laboratório", "Farmácia", "Almoxarifado"}
	priorities  = []string{"Muito baixa", "Baixa", "Média", "Alta", "Muito alta"}

	problems = []struct {
		category string
		titles   []string
	}{
		{"IMPRESSORA", []string{"Impressora não imprime", "Impressora com papel atolado na bandeja", "Configurar impressora na rede do setor"}},
		{"TONNER", []string{"Troca de toner", "Solicitação de tonner para impressora do setor"}},
		{"SPDATA", []string{"Reset de senha SPDATA", "Erro ao abrir prontuário no SPDATA"}},
		{"COMPUTADOR", []string{"Computador não liga", "Computador muito lento para abrir sistemas"}},
		{"TECLADO", []string{"Teclado com teclas falhando"}},
		{"MONITOR", []string{"Monitor sem imagem", "Monitor piscando durante o uso"}},
		{"REDE > INTERNET", []string{"Sem internet", "Internet oscilando em todo o setor"}},
		{"", []string{"Dúvida", "Solicitação de acesso a pasta compartilhada"}},
	}
)

// Generate builds a synthetic GLPI export, one row per ticket in export column order.
func Generate(cfg GeneratorConfig) [][]string {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if cfg.Months <= 0 {
		cfg.Months = 6
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	start := cfg.Now.AddDate(0, -cfg.Months, 0)
	span := cfg.Now.Sub(start)

	rows := make([][]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		progress := float64(i) / float64(max(cfg.Count, 1))

		// 1. Arrival. Drift back-loads arrivals so monthly volume grows.
		offset := rng.Float64()
		if cfg.Scenario == "drift" {
			offset = math.Sqrt(offset)
		}
		opened := start.Add(time.Duration(offset * float64(span))).Truncate(time.Minute)

		// 2. Resolution time in hours
		var hours float64
		if cfg.Distribution == "weibull" {
			hours = weibullSample(rng, 1.3, 7.0)
		} else {
			hours = 0.5 + rng.Float64()*14.0
		}
		switch cfg.Scenario {
		case "chaos":
			if rng.Float64() < 0.2 {
				hours += 50 + rng.Float64()*150
			}
		case "drift":
			hours *= 1 + progress
		}

		p := problems[rng.IntN(len(problems))]
		category := ticket.CategorySentinel
		if p.category != "" {
			category = ticket.CategoryPrefix + p.category
		}
		priority := priorities[rng.IntN(len(priorities))]

		// 3. Status by age
		updated := opened.Add(time.Duration(hours * float64(time.Hour)))
		status := ticket.StatusClosed
		switch {
		case updated.After(cfg.Now):
			status = ticket.StatusPending
			updated = cfg.Now.Add(-time.Duration(rng.IntN(48)) * time.Hour)
			if updated.Before(opened) {
				updated = opened
			}
		case rng.Float64() < 0.25:
			status = ticket.StatusSolved
		}

		openedText := formatDate(opened)
		updatedText := formatDate(updated)
		if cfg.Scenario == "chaos" && rng.Float64() < 0.03 {
			openedText = ""
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", 1000+i),
			p.titles[rng.IntN(len(p.titles))],
			status,
			priority,
			category,
			technicians[rng.IntN(len(technicians))],
			requesters[rng.IntN(len(requesters))],
			locations[rng.IntN(len(locations))],
			openedText,
			opened.Format("15:04"),
			updatedText,
			formatDate(opened.Add(slaWindow(priority))),
		})
	}
	return rows
}

func slaWindow(priority string) time.Duration {
	switch priority {
	case "Muito alta":
		return 4 * time.Hour
	case "Alta":
		return 8 * time.Hour
	case "Média":
		return 24 * time.Hour
	}
	return 72 * time.Hour
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

func weibullSample(rng *rand.Rand, k, lambda float64) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.0001
	}
	// X = lambda * (-ln(1-u))^(1/k)
	return lambda * math.Pow(-math.Log(1.0-u), 1.0/k)
}

// Write encodes rows as the semicolon-delimited GLPI export with its header.
func Write(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(ticket.KnownColumns); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// Save writes rows to path, gzip-compressed when path ends in ".gz".
func Save(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}
	if err := Write(w, rows); err != nil {
		return err
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return err
		}
	}
	return f.Close()
}
