package cssbuild

import (
	"fmt"
	"strconv"
	"strings"
)

// Zero and the global keywords are valid for any property.
const (
	Zero    = "0"
	Auto    = "auto"
	Inherit = "inherit"
	Initial = "initial"
)

// Text renders a value the way declarations and functions embed it.
//
// Strings are used verbatim, fmt.Stringer values through String, numbers
// through the shared number formatter and nil as the empty string.
func Text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case float64:
		return formatNumber(v)
	case float32:
		return formatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	default:
		return fmt.Sprint(v)
	}
}

// Join renders every value with Text and joins the results with sep.
func Join(sep string, values ...any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Text(v)
	}
	return strings.Join(parts, sep)
}

// formatNumber renders n without exponent and without trailing zeros.
// Zero (including negative zero) is always "0".
func formatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
