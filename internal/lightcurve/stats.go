package lightcurve

import (
	"math"

	"github.com/astrolab/starcurve/pkg/models"
)

// ColumnStats summarizes one measurement column. NaN cells (cadence
// gaps) are excluded from the statistics.
type ColumnStats struct {
	Name  string
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// Summary describes a whole time series.
type Summary struct {
	Name      string
	Points    int
	TimeStart float64
	TimeEnd   float64
	Columns   []ColumnStats
}

// Summarize computes summary statistics over a time series.
func Summarize(ts *models.TimeSeries) Summary {
	s := Summary{Name: ts.Name, Points: ts.Len()}
	if len(ts.Time) > 0 {
		s.TimeStart = ts.Time[0]
		s.TimeEnd = ts.Time[len(ts.Time)-1]
	}

	for _, col := range ts.Columns {
		cs := ColumnStats{Name: col.Name, Min: math.Inf(1), Max: math.Inf(-1)}
		var sum float64
		for _, v := range col.Values {
			if math.IsNaN(v) {
				continue
			}
			cs.Count++
			sum += v
			if v < cs.Min {
				cs.Min = v
			}
			if v > cs.Max {
				cs.Max = v
			}
		}
		if cs.Count > 0 {
			cs.Mean = sum / float64(cs.Count)
		} else {
			cs.Min, cs.Max = 0, 0
		}
		s.Columns = append(s.Columns, cs)
	}

	return s
}
