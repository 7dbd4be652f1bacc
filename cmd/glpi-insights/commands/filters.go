package commands

import (
	"fmt"
	"os"
	"time"

	"glpi-insights/internal/dashboard"
	"glpi-insights/internal/filter"
	"glpi-insights/internal/session"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// filterFlags are the primary filters shared by the one-shot commands.
type filterFlags struct {
	file       string
	start      string
	end        string
	technician string
	status     string
	priority   string
	category   string
	allDates   bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "GLPI export to read instead of GLPI_CSV_PATH")
	cmd.Flags().StringVar(&f.start, "start", "", "start of the opening-date period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.end, "end", "", "end of the opening-date period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.technician, "technician", filter.All, "technician filter")
	cmd.Flags().StringVar(&f.status, "status", filter.All, "status filter")
	cmd.Flags().StringVar(&f.priority, "priority", filter.AllFeminine, "priority filter")
	cmd.Flags().StringVar(&f.category, "category", filter.AllFeminine, "category filter")
	cmd.Flags().BoolVar(&f.allDates, "all-dates", false, "do not default the period to the current month")
}

// input loads the tickets and applies the flags. Without explicit dates the period
// defaults to the current month when the data covers it.
func (f *filterFlags) input(now time.Time) (dashboard.Input, string, error) {
	var upload []byte
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return dashboard.Input{}, "", fmt.Errorf("failed to read %s: %w", f.file, err)
		}
		upload = data
	}

	res := loader.Load(upload)
	if !res.OK() {
		return dashboard.Input{}, "", fmt.Errorf("no tickets loaded (%s): %s", res.Status, res.Message)
	}
	snap := res.Snapshot
	source := snap.Source
	if f.file != "" {
		source = f.file
	}

	period, err := filter.ParsePeriod(f.start, f.end)
	if err != nil {
		return dashboard.Input{}, "", err
	}
	if period == nil && !f.allDates {
		if p, ok := filter.DefaultPeriod(snap, now); ok {
			period = &p
			log.Info().Time("start", p.Start).Time("end", p.End).Msg("Using default period")
		}
	}

	st := session.New().WithSource(res.Key).WithCriteria(filter.Criteria{
		Period:     period,
		Technician: f.technician,
		Status:     f.status,
		Priority:   f.priority,
		Category:   f.category,
	})
	return dashboard.NewInput(snap, st, cfg.Rules, now), source, nil
}
