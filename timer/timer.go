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
package timer

import (
	"time"

	"github.com/mendersoftware/timemark/format"
)

var processStart = time.Now()

// monotonicSeconds is the default clock: fractional seconds since process
// start, read from the monotonic clock so that diffs are immune to
// wall-clock steps. The epoch is arbitrary, only differences matter.
func monotonicSeconds() float64 {
	return time.Since(processStart).Seconds()
}

type mark struct {
	label string
	at    float64
}

// Timer is an ordered ledger of named timestamps ("marks") recorded during
// one timing session. Marks keep their first-insertion position even when
// re-recorded under the same label, which is what defines the "previous
// mark" relationship used by Stats.
//
// A Timer is not safe for concurrent use; callers either synchronize
// externally or keep one Timer per goroutine.
type Timer struct {
	now   func() float64
	marks []mark
	index map[string]int
}

// New returns an empty Timer using the process-relative monotonic clock.
func New() *Timer {
	return NewWithClock(monotonicSeconds)
}

// NewWithClock returns an empty Timer reading timestamps from now. The
// clock must be non-decreasing for elapsed times to stay non-negative;
// beyond that any timebase works.
func NewWithClock(now func() float64) *Timer {
	return &Timer{
		now:   now,
		index: make(map[string]int),
	}
}

// Mark records label at the current time. Re-recording an existing label
// overwrites its timestamp but keeps its original position in the ledger.
// The empty label is permitted.
func (t *Timer) Mark(label string) {
	at := t.now()
	if i, ok := t.index[label]; ok {
		t.marks[i].at = at
		return
	}
	t.index[label] = len(t.marks)
	t.marks = append(t.marks, mark{label: label, at: at})
}

// Len returns the number of marks recorded.
func (t *Timer) Len() int {
	return len(t.marks)
}

// Timestamp returns the recorded timestamp for label, or false when the
// label was never marked.
func (t *Timer) Timestamp(label string) (float64, bool) {
	i, ok := t.index[label]
	if !ok {
		return 0, false
	}
	return t.marks[i].at, true
}

// Elapsed returns the time recorded for b minus the time recorded for a.
// Unlike TimeDiff it is a pure query: it returns false when either label
// is absent and never mutates the ledger.
func (t *Timer) Elapsed(a, b string) (float64, bool) {
	i, ok := t.index[a]
	if !ok {
		return 0, false
	}
	j, ok := t.index[b]
	if !ok {
		return 0, false
	}
	return t.marks[j].at - t.marks[i].at, true
}

// TimeDiff returns the elapsed time from point1 to point2, formatted with
// the fixed "."/"," grouping convention and at most decimals decimal
// places. An unknown point1 yields "".
//
// Note the side effect: when point2 has not been marked yet (the empty
// string included), it is recorded at the current time before the
// difference is taken, so repeated calls with an unresolved point2 keep
// moving that mark forward.
func (t *Timer) TimeDiff(point1, point2 string, decimals int) string {
	i, ok := t.index[point1]
	if !ok {
		return ""
	}
	p1 := t.marks[i].at
	j, ok := t.index[point2]
	if !ok {
		t.Mark(point2)
		j = t.index[point2]
	}
	return format.Float(t.marks[j].at-p1, decimals, false)
}

// Stat is the derived view of one mark: its raw timestamp, the elapsed
// time since the first mark, and the elapsed time since the mark recorded
// immediately before it. Both elapsed fields are zero for the first mark.
type Stat struct {
	Label         string
	Timestamp     float64
	SinceStart    float64
	SincePrevious float64
}

// Stats derives one Stat per mark, in insertion order. An empty ledger
// yields an empty result. Stats never mutates the ledger.
func (t *Timer) Stats() []Stat {
	if len(t.marks) == 0 {
		return nil
	}
	stats := make([]Stat, 0, len(t.marks))
	start := t.marks[0].at
	prev := start
	for _, m := range t.marks {
		stats = append(stats, Stat{
			Label:         m.label,
			Timestamp:     m.at,
			SinceStart:    m.at - start,
			SincePrevious: m.at - prev,
		})
		prev = m.at
	}
	return stats
}
