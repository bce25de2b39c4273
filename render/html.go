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
	"html/template"
	"io"

	"github.com/pkg/errors"

	"github.com/mendersoftware/timemark/timer"
)

// The overlay is self-contained on purpose: inline stylesheet, no external
// assets, fixed position so it floats above whatever page it is embedded
// in.
const overlayTemplate = `<div class="timemark-report">
  <style scoped>
    .timemark-report {
      position: fixed;
      top: 10px;
      right: 10px;
      z-index: 99999;
      background: #fffef0;
      border: 1px solid #999;
      padding: 6px 10px;
      font: 11px/1.5 monospace;
      color: #222;
      box-shadow: 2px 2px 6px rgba(0, 0, 0, 0.3);
    }
    .timemark-report table {
      border-collapse: collapse;
    }
    .timemark-report th,
    .timemark-report td {
      padding: 1px 8px;
      text-align: right;
      border-bottom: 1px solid #ddd;
    }
    .timemark-report th:first-child,
    .timemark-report td:first-child {
      text-align: left;
    }
  </style>
  <table>
    <tr><th>Mark</th><th>Since start</th><th>Since previous</th><th>Timestamp</th></tr>
{{- range .}}
    <tr><td>{{.Label}}</td><td>{{.SinceStart}}</td><td>{{.SincePrevious}}</td><td>{{.Timestamp}}</td></tr>
{{- end}}
  </table>
</div>
`

var overlayTmpl = template.Must(template.New("overlay").Parse(overlayTemplate))

// WriteHTML writes the report for t to w as a floating overlay widget,
// suitable for appending to an HTML page body. Nothing is written for an
// empty ledger.
func WriteHTML(w io.Writer, t *timer.Timer, decimals int) error {
	rows := Rows(t, decimals)
	if len(rows) == 0 {
		return nil
	}
	return errors.Wrap(overlayTmpl.Execute(w, rows),
		"failed to write timing report widget")
}
