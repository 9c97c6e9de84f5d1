package metrics

import "sort"

// DailyTotals is a rolling per-date sum. Adding a log updates one entry
// instead of re-summing the whole history.
type DailyTotals map[string]float64

// IndexTotals builds the per-date sums for logs
func IndexTotals[T Measured](logs []T) DailyTotals {
	totals := make(DailyTotals)
	for _, l := range logs {
		totals.Add(l.LogDate(), l.Quantity())
	}
	return totals
}

func (d DailyTotals) Add(date string, quantity float64) {
	d[date] += quantity
}

func (d DailyTotals) Get(date string) float64 {
	return d[date]
}

// Dates returns every indexed date, newest first
func (d DailyTotals) Dates() []string {
	dates := make([]string, 0, len(d))
	for date := range d {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
