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
	log "github.com/sirupsen/logrus"

	"github.com/mendersoftware/timemark/timer"
)

// Log emits the report for t as one structured log line per mark, at info
// level. Useful for daemon-style hosts where stdout is not a report sink.
// Nothing is logged for an empty ledger.
func Log(logger log.FieldLogger, t *timer.Timer, decimals int) {
	for _, r := range Rows(t, decimals) {
		logger.WithFields(log.Fields{
			"mark":           r.Label,
			"since_start":    r.SinceStart,
			"since_previous": r.SincePrevious,
			"timestamp":      r.Timestamp,
		}).Info("timing mark")
	}
}
