// SPDX-License-Identifier: MIT

// Package profile renders Gram–Schmidt log-norm profiles as interactive
// HTML line charts (github.com/go-echarts/go-echarts/v2).
//
// A profile is the sequence log2 ‖b*ᵢ‖ over the logical positions of a
// basis, as returned by lattice.GSProfile. Plotting the profile before and
// after Reduce shows how far the reduction flattened it.
//
//	before, _, _ := lattice.GSProfile(b, 0)
//	_, _ = lattice.Reduce(b, 0)
//	after, _, _ := lattice.GSProfile(b, 0)
//	err := profile.WriteChart(f, "knapsack n=12",
//		profile.Series{Name: "input", Values: before},
//		profile.Series{Name: "reduced", Values: after})
package profile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	// ErrNoSeries indicates a WriteChart call without any series.
	ErrNoSeries = errors.New("profile: no series")

	// ErrSeriesLength indicates an empty series or series of different lengths.
	ErrSeriesLength = errors.New("profile: series lengths differ or are zero")
)

const (
	xAxisName = "i"
	yAxisName = "log2 ‖b*ᵢ‖"
)

// Series is one named profile.
type Series struct {
	Name   string
	Values []float64
}

// WriteChart renders every series on one line chart and writes the HTML
// page to w. Non-finite values (log2 of a zero norm) are drawn as gaps.
//
// Errors:
//   - ErrNoSeries, ErrSeriesLength; write errors from w, wrapped.
func WriteChart(w io.Writer, title string, series ...Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	n := len(series[0].Values)
	for _, s := range series {
		if n == 0 || len(s.Values) != n {
			return fmt.Errorf("series %q: %d values, want %d: %w", s.Name, len(s.Values), n, ErrSeriesLength)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: xAxisName, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName, Type: "value"}),
	)

	xs := make([]string, n)
	for i := range xs {
		xs[i] = strconv.Itoa(i)
	}
	line.SetXAxis(xs)
	for _, s := range series {
		line.AddSeries(s.Name, lineItems(s.Values))
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("profile: render: %w", err)
	}

	return nil
}

// lineItems converts values to chart points; NaN and ±Inf become null.
func lineItems(vals []float64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = opts.LineData{Value: v}
	}

	return out
}
