// Copyright 2023 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.
package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/mendersoftware/timemark/timer"
)

// WriteChart writes the report for t to w as a self-contained HTML page
// with a bar chart of the per-mark elapsed times. Nothing is written for
// an empty ledger.
func WriteChart(w io.Writer, t *timer.Timer, decimals int) error {
	stats := t.Stats()
	if len(stats) == 0 {
		return nil
	}
	labels := make([]string, 0, len(stats))
	sincePrev := make([]opts.BarData, 0, len(stats))
	sinceStart := make([]opts.BarData, 0, len(stats))
	for _, s := range stats {
		labels = append(labels, s.Label)
		sincePrev = append(sincePrev, opts.BarData{Value: s.SincePrevious})
		sinceStart = append(sinceStart, opts.BarData{Value: s.SinceStart})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Timing report",
			Subtitle: "elapsed seconds per mark",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
	)
	bar.SetXAxis(labels).
		AddSeries("since previous", sincePrev).
		AddSeries("since start", sinceStart)

	return errors.Wrap(bar.Render(w), "failed to write timing chart")
}
