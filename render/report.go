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

// Package render turns a timer ledger into reports. Rows is the pure
// derivation; the Write* adapters put the same rows on a specific medium
// (plain-text table, HTML overlay widget, chart page) and Log streams them
// through a logger. Every adapter is a no-op for an empty ledger.
package render

import (
	"github.com/mendersoftware/timemark/format"
	"github.com/mendersoftware/timemark/timer"
)

// Raw timestamps are coordinates, not durations; they always render with
// full fixed precision.
const timestampDecimals = 4

// Row is one rendered report line. Elapsed columns carry adaptive
// precision, the timestamp column is fixed at four decimals.
type Row struct {
	Label         string
	SinceStart    string
	SincePrevious string
	Timestamp     string
}

// Rows derives the formatted report rows for t, one per mark in insertion
// order, using at most decimals decimal places for the elapsed columns.
// An empty ledger yields no rows. Rows never mutates the ledger.
func Rows(t *timer.Timer, decimals int) []Row {
	stats := t.Stats()
	if len(stats) == 0 {
		return nil
	}
	rows := make([]Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, Row{
			Label:         s.Label,
			SinceStart:    format.Float(s.SinceStart, decimals, false),
			SincePrevious: format.Float(s.SincePrevious, decimals, false),
			Timestamp:     format.Fixed(s.Timestamp, timestampDecimals),
		})
	}
	return rows
}
