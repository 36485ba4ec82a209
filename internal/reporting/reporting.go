// Package reporting computes the booking statistics served by the stat
// routes: totals plus the sales chart rows the dashboard feeds straight
// into its chart widget.
package reporting

import (
	"fmt"
	"time"
)

// Sale is the projection of a booking the aggregation runs over.
type Sale struct {
	TotalPrice float64   `bson:"totalPrice" json:"totalPrice"`
	Time       time.Time `bson:"time" json:"time"`
}

// Summary aggregates a filtered booking set. ChartData starts with the
// literal ["Day","Sales"] header row; the remaining rows follow the input
// order with no bucketing or deduplication.
type Summary struct {
	TotalBooking int     `json:"totalBooking"`
	TotalPrice   float64 `json:"totalPrice"`
	ChartData    [][]any `json:"chartData"`
}

// Summarize is pure: for a fixed sale set it always yields the same
// summary. An empty set yields zero totals and the bare header row.
func Summarize(sales []Sale) Summary {
	chart := make([][]any, 0, len(sales)+1)
	chart = append(chart, []any{"Day", "Sales"})

	var total float64
	for _, s := range sales {
		total += s.TotalPrice
		chart = append(chart, []any{ChartLabel(s.Time), s.TotalPrice})
	}

	return Summary{
		TotalBooking: len(sales),
		TotalPrice:   total,
		ChartData:    chart,
	}
}

// ChartLabel renders a booking timestamp as "<weekday>/<month>", with
// weekday 0 = Sunday and a zero-based month, in server local time. Labels
// carry no year, so they collide across years; the dashboard relies on
// this exact format.
func ChartLabel(t time.Time) string {
	lt := t.Local()
	return fmt.Sprintf("%d/%d", int(lt.Weekday()), int(lt.Month())-1)
}

// Scoped stat responses. Admin sees full-collection counts, hosts see
// their own room count, guests get totals only.

type AdminStats struct {
	TotalRoom int64 `json:"totalRoom"`
	TotalUser int64 `json:"totalUser"`
	Summary
}

type HostStats struct {
	TotalRoom int64 `json:"totalRoom"`
	Summary
}

type GuestStats struct {
	Summary
}
