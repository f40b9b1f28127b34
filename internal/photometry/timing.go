package photometry

import (
	"fmt"
	"math"
)

// ColumnJDUTC is the UTC Julian date column every measurement table must carry.
const ColumnJDUTC = "JD_UTC"

// exposureColumns are the exposure-duration column names tried in order;
// when neither exists the exposure is taken as zero.
var exposureColumns = []string{"EXPTIME", "EXPOSURE"}

// Timing holds the derived observation timing for one table.
type Timing struct {
	Start       float64 // JD of first sample, shifted back half an exposure.
	End         float64 // JD of last sample, shifted forward half an exposure.
	DurationMin int     // round((End-Start) * 1440).
	Samples     int     // Data row count.
}

// DeriveTiming computes observation start, end, duration, and sample count
// from the table's JD_UTC and exposure columns.
func DeriveTiming(t *Table) (Timing, error) {
	jd, ok := t.FloatColumn(ColumnJDUTC)
	if !ok {
		return Timing{}, fmt.Errorf("column %s not found in table", ColumnJDUTC)
	}
	first, last := jd[0], jd[len(jd)-1]
	if math.IsNaN(first) || math.IsNaN(last) {
		return Timing{}, fmt.Errorf("column %s holds non-numeric values", ColumnJDUTC)
	}

	exp0, exp1 := 0.0, 0.0
	for _, name := range exposureColumns {
		vals, ok := t.FloatColumn(name)
		if !ok {
			continue
		}
		exp0, exp1 = vals[0], vals[len(vals)-1]
		if math.IsNaN(exp0) {
			exp0 = 0
		}
		if math.IsNaN(exp1) {
			exp1 = 0
		}
		break
	}

	start := first - 0.5*exp0/86400.0
	end := last + 0.5*exp1/86400.0
	return Timing{
		Start:       start,
		End:         end,
		DurationMin: int(math.Round((end - start) * 24 * 60)),
		Samples:     t.NumRows(),
	}, nil
}
