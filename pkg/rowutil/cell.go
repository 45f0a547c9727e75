// Package rowutil coerces heterogeneous source-row cells into canonical
// string form. Spreadsheet and web collaborators hand rows over as
// map[string]any, so a cell may arrive as a string, a JSON number, a bool or
// nil depending on how the source column was typed.
package rowutil

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CellString converts a row cell to a trimmed string. Nil cells become "".
// Integral numbers render without a decimal point, because spreadsheet
// readers deliver whole-number columns (stage codes, scores) as floats.
func CellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case float32:
		return CellString(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

// CellInt extracts an integer code from a cell. Numeric strings ("3"),
// floats (3.0) and ints all work; the second return reports whether the cell
// held a usable whole number.
func CellInt(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return int(val), true
		}
		return 0, false
	case float32:
		return CellInt(float64(val))
	case int:
		return val, true
	case int64:
		return int(val), true
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n), true
		}
		return 0, false
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
