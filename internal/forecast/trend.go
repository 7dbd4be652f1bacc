package forecast

import (
	"glpi-insights/internal/stats"
	"glpi-insights/internal/ticket"
)

const (
	// MinPeriods is the shortest series a trend is fitted to.
	MinPeriods = 3
	// Horizon is the number of future periods extrapolated.
	Horizon = 3
)

// Line is y = Slope*x + Intercept over the period index x.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// At evaluates the line at period index x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// FitLine fits a first-degree polynomial to (index, value) by ordinary least squares.
// ok is false when fewer than MinPeriods values are given.
func FitLine(values []float64) (Line, bool) {
	n := float64(len(values))
	if len(values) < MinPeriods {
		return Line{}, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	den := n*sumXX - sumX*sumX
	slope := (n*sumXY - sumX*sumY) / den
	return Line{Slope: slope, Intercept: (sumY - slope*sumX) / n}, true
}

// Trend is the fitted monthly demand with its short-term extrapolation.
type Trend struct {
	Months   []string  `json:"months"`
	Actual   []float64 `json:"actual"`
	Line     Line      `json:"line"`
	Fitted   []float64 `json:"fitted"`
	Forecast []float64 `json:"forecast"`
	// ForecastMean is the mean of the extrapolated periods.
	ForecastMean float64 `json:"forecast_mean"`
	// Growth is the percent change from the first to the last month, nil when the first is zero.
	Growth *float64 `json:"growth"`
}

// FitTrend fits the monthly series. It returns nil for series shorter than MinPeriods.
func FitTrend(series []stats.MonthPoint) *Trend {
	values := stats.SeriesCounts(series)
	line, ok := FitLine(values)
	if !ok {
		return nil
	}

	t := &Trend{
		Actual:   values,
		Line:     line,
		Fitted:   make([]float64, len(values)),
		Forecast: make([]float64, Horizon),
	}
	for i, p := range series {
		t.Months = append(t.Months, p.Month)
		t.Fitted[i] = line.At(float64(i))
	}
	for i := range Horizon {
		t.Forecast[i] = line.At(float64(len(values) + i))
	}
	t.ForecastMean = *stats.Mean(t.Forecast)

	first := values[0]
	if g := stats.Ratio(values[len(values)-1]-first, &first); g != nil {
		pct := *g * 100
		t.Growth = &pct
	}
	return t
}

// DemandForecast fits the monthly volume of tickets.
func DemandForecast(tickets []ticket.Ticket) *Trend {
	return FitTrend(stats.MonthlySeries(tickets))
}
