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
	"bytes"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendersoftware/timemark/timer"
)

type fakeClock struct {
	now float64
}

func (c *fakeClock) read() float64 {
	return c.now
}

// scenarioTimer marks Start/Mid/End at 0.0, 1.2345 and 3.0 seconds.
func scenarioTimer() *timer.Timer {
	clock := &fakeClock{}
	tm := timer.NewWithClock(clock.read)
	clock.now = 0.0
	tm.Mark("Start")
	clock.now = 1.2345
	tm.Mark("Mid")
	clock.now = 3.0
	tm.Mark("End")
	return tm
}

func TestRows(t *testing.T) {
	rows := Rows(scenarioTimer(), 4)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{
		Label:         "Start",
		SinceStart:    "0",
		SincePrevious: "0",
		Timestamp:     "0,0000",
	}, rows[0])
	assert.Equal(t, Row{
		Label:         "Mid",
		SinceStart:    "1,2345",
		SincePrevious: "1,2345",
		Timestamp:     "1,2345",
	}, rows[1])
	assert.Equal(t, Row{
		Label:         "End",
		SinceStart:    "3",
		SincePrevious: "1,7655",
		Timestamp:     "3,0000",
	}, rows[2])
}

func TestRowsEmpty(t *testing.T) {
	assert.Empty(t, Rows(timer.New(), 4))
}

func TestWriteTextEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteText(buf, timer.New(), 4)
	assert.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestWriteText(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteText(buf, scenarioTimer(), 4)
	require.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "MARK")
	assert.Contains(t, lines[0], "SINCE PREVIOUS")
	assert.Contains(t, lines[2], "Mid")
	assert.Contains(t, lines[2], "1,2345")
	assert.Contains(t, lines[3], "1,7655")
	assert.Contains(t, lines[3], "3,0000")
}

func TestWriteHTML(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteHTML(buf, scenarioTimer(), 4)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<div class="timemark-report">`)
	assert.Contains(t, out, "<td>Mid</td>")
	assert.Contains(t, out, "<td>1,2345</td>")
	assert.Contains(t, out, "<td>1,7655</td>")
	// Report floats above the page it is embedded in.
	assert.Contains(t, out, "position: fixed")
}

func TestWriteHTMLEscapesLabels(t *testing.T) {
	clock := &fakeClock{}
	tm := timer.NewWithClock(clock.read)
	tm.Mark("<script>alert(1)</script>")

	buf := &bytes.Buffer{}
	err := WriteHTML(buf, tm, 4)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestWriteHTMLEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteHTML(buf, timer.New(), 4)
	assert.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestWriteChart(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteChart(buf, scenarioTimer(), 4)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Timing report")
	assert.Contains(t, out, "Mid")
}

func TestWriteChartEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteChart(buf, timer.New(), 4)
	assert.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestLog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New()
	logger.SetOutput(buf)
	logger.SetLevel(log.InfoLevel)

	Log(logger, scenarioTimer(), 4)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, out, "timing mark")
	assert.Contains(t, out, "mark=Mid")
	assert.Contains(t, out, `since_previous="1,7655"`)
}

func TestLogEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New()
	logger.SetOutput(buf)

	Log(logger, timer.New(), 4)
	assert.Equal(t, 0, buf.Len())
}
