package reporting_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stayvista/stayvista-api/internal/reporting"
)

func TestSummarize_Totals(t *testing.T) {
	sales := []reporting.Sale{
		{TotalPrice: 150, Time: time.Date(2024, time.March, 4, 12, 0, 0, 0, time.Local)},
		{TotalPrice: 99.5, Time: time.Date(2024, time.March, 5, 9, 30, 0, 0, time.Local)},
		{TotalPrice: 200, Time: time.Date(2024, time.July, 1, 18, 0, 0, 0, time.Local)},
	}

	summary := reporting.Summarize(sales)

	if summary.TotalBooking != 3 {
		t.Fatalf("Expected 3 bookings, got %d", summary.TotalBooking)
	}
	if summary.TotalPrice != 449.5 {
		t.Fatalf("Expected total 449.5, got %v", summary.TotalPrice)
	}
	if len(summary.ChartData) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d rows", len(summary.ChartData))
	}
}

func TestSummarize_HeaderRow(t *testing.T) {
	summary := reporting.Summarize(nil)

	if summary.TotalBooking != 0 || summary.TotalPrice != 0 {
		t.Fatalf("Expected zero totals, got %d / %v", summary.TotalBooking, summary.TotalPrice)
	}
	if len(summary.ChartData) != 1 {
		t.Fatalf("Expected bare header row, got %d rows", len(summary.ChartData))
	}
	if !reflect.DeepEqual(summary.ChartData[0], []any{"Day", "Sales"}) {
		t.Fatalf("Unexpected header row: %v", summary.ChartData[0])
	}
}

func TestSummarize_RowsFollowInputOrder(t *testing.T) {
	sales := []reporting.Sale{
		{TotalPrice: 30, Time: time.Date(2024, time.December, 25, 0, 0, 0, 0, time.Local)},
		{TotalPrice: 10, Time: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)},
		{TotalPrice: 20, Time: time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)},
	}

	summary := reporting.Summarize(sales)

	for i, sale := range sales {
		row := summary.ChartData[i+1]
		if row[0] != reporting.ChartLabel(sale.Time) {
			t.Fatalf("Row %d label: expected %v, got %v", i+1, reporting.ChartLabel(sale.Time), row[0])
		}
		if row[1] != sale.TotalPrice {
			t.Fatalf("Row %d price: expected %v, got %v", i+1, sale.TotalPrice, row[1])
		}
	}
}

func TestSummarize_Deterministic(t *testing.T) {
	sales := []reporting.Sale{
		{TotalPrice: 42, Time: time.Date(2024, time.May, 10, 8, 0, 0, 0, time.Local)},
		{TotalPrice: 58, Time: time.Date(2024, time.May, 11, 8, 0, 0, 0, time.Local)},
	}

	first := reporting.Summarize(sales)
	second := reporting.Summarize(sales)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Summaries differ across runs: %v vs %v", first, second)
	}
}

func TestChartLabel_Format(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
	}{
		{"sunday in january", time.Date(2024, time.January, 7, 10, 0, 0, 0, time.Local)},
		{"monday in december", time.Date(2024, time.December, 2, 10, 0, 0, 0, time.Local)},
		{"midweek in june", time.Date(2024, time.June, 12, 23, 59, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := fmt.Sprintf("%d/%d", int(tt.in.Weekday()), int(tt.in.Month())-1)
			if got := reporting.ChartLabel(tt.in); got != want {
				t.Fatalf("Expected %q, got %q", want, got)
			}
		})
	}
}

func TestChartLabel_ZeroBasedMonth(t *testing.T) {
	// January 7 2024 is a Sunday.
	label := reporting.ChartLabel(time.Date(2024, time.January, 7, 0, 0, 0, 0, time.Local))
	if label != "0/0" {
		t.Fatalf("Expected 0/0 for a Sunday in January, got %q", label)
	}
}
