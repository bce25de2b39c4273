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

// Package format renders numbers with a fixed grouping convention:
// thousands separated by "." and the decimal point written as ",". The
// convention is part of the output contract and is never taken from the
// host locale.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// humanize renders at most nine decimal places.
const maxRenderDecimals = 9

// renderFormat builds the humanize.FormatFloat render format for the fixed
// separator convention with the given number of decimal places, e.g.
// "#.###,##" for two decimals.
func renderFormat(decimals int) string {
	if decimals < 0 {
		decimals = 0
	} else if decimals > maxRenderDecimals {
		decimals = maxRenderDecimals
	}
	return "#.###," + strings.Repeat("#", decimals)
}

// MaxDecimals returns the number of decimal places actually needed to
// represent value once it has been rounded to decimals places, i.e. the
// requested precision with trailing zero-valued decimals trimmed. The
// result is always in [0, decimals].
//
// The check runs over the decimal representation rather than repeated
// multiplication by powers of ten, which would trip over binary rounding
// for values like 1.2345.
func MaxDecimals(value float64, decimals int) int {
	if decimals <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	s := strconv.FormatFloat(value, 'f', decimals, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return len(strings.TrimRight(s[dot+1:], "0"))
}

// Float renders v with thousands grouping and adaptive precision: at most
// decimals decimal places, trailing zero-valued places trimmed. NaN and
// infinities render as "", as does zero when zeroIsNull is set.
func Float(v float64, decimals int, zeroIsNull bool) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if zeroIsNull && v == 0 {
		return ""
	}
	return humanize.FormatFloat(renderFormat(MaxDecimals(v, decimals)), v)
}

// Fixed renders v with thousands grouping and exactly decimals decimal
// places, padding with zeros instead of trimming. Used where a value is a
// coordinate rather than a duration, e.g. raw timestamps.
func Fixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return humanize.FormatFloat(renderFormat(decimals), v)
}

// Number renders an arbitrary value like Float. Integer and float types
// are accepted directly, strings are parsed as decimal numbers. Anything
// non-numeric renders as "".
func Number(value interface{}, decimals int, zeroIsNull bool) string {
	v, ok := toFloat(value)
	if !ok {
		return ""
	}
	return Float(v, decimals, zeroIsNull)
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
