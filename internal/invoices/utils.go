package invoices

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// SafeFloat parses a numeric source value, returning 0 for absent or
// non-numeric input. Measure columns never carry null or NaN into arithmetic.
// ParseFloat accepts "NaN" and "Inf" tokens; those count as non-numeric here
// because NaN and infinities do not survive JSON serialization.
func SafeFloat(val string) float64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// ensureReadOnly rejects any statement that is not a plain SELECT or a WITH
// query. The translator's generated SQL goes through a read path only.
func ensureReadOnly(sql string) error {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return fmt.Errorf("empty query")
	}

	first := strings.ToUpper(firstWord(trimmed))
	if first != "SELECT" && first != "WITH" {
		return fmt.Errorf("only SELECT statements are allowed, got %q", first)
	}

	return nil
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '(' {
			return s[:i]
		}
	}

	return s
}

// normalizeValue converts driver types to JSON-friendly values. Dates render
// in the same textual form the source data uses.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format("2006-01-02")
	case []byte:
		return string(val)
	default:
		return v
	}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinFields(fields []string) string {
	return strings.Join(fields, " | ")
}
