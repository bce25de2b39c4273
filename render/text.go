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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/mendersoftware/timemark/timer"
)

// WriteText writes the report for t to w as an aligned plain-text table.
// Nothing is written for an empty ledger.
func WriteText(w io.Writer, t *timer.Timer, decimals int) error {
	rows := Rows(t, decimals)
	if len(rows) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "MARK\tSINCE START\tSINCE PREVIOUS\tTIMESTAMP")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Label, r.SinceStart, r.SincePrevious, r.Timestamp)
	}
	return errors.Wrap(tw.Flush(), "failed to write timing report")
}
