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
package conf

// Default decimal precisions of the reporting surface. Go has no default
// arguments, so the defaults of the original interface live here and
// callers pass them explicitly.
const (
	// DefaultFormatDecimals is the precision ceiling of plain number
	// formatting.
	DefaultFormatDecimals = 2
	// DefaultMaxDecimals is the precision ceiling of adaptive decimal
	// trimming.
	DefaultMaxDecimals = 3
	// DefaultDiffDecimals is the precision ceiling of mark-to-mark time
	// differences.
	DefaultDiffDecimals = 4
	// DefaultReportDecimals is the precision ceiling of the rendered
	// report columns.
	DefaultReportDecimals = 4
)

// Version of the timemark tool. Set at build time with
//
//	-ldflags "-X github.com/mendersoftware/timemark/conf.Version=..."
var Version = "unknown"

func VersionString() string {
	return "timemark " + Version
}
