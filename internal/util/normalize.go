package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reThousandDots   = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)
	reThousandCommas = regexp.MustCompile(`^\d{1,3}(?:,\d{2,3})+$`)
	reNumberToken    = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// NormalizeID trims and uppercases a student ID cell.
func NormalizeID(cell string) string {
	return strings.ToUpper(strings.TrimSpace(cell))
}

// ParseSalary reads a salary or stipend cell as a number, returning 0 for
// blank or unparseable values. Thousand separators in both western
// (450.000 / 450,000) and Indian (4,50,000) grouping are handled, as are
// decimal commas and trailing unit text such as "4.5 LPA".
func ParseSalary(cell string) float64 {
	s := strings.ReplaceAll(cell, " ", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	compact := normalizeNumericToken(strings.ReplaceAll(s, " ", ""))
	if parsed, err := strconv.ParseFloat(compact, 64); err == nil {
		if parsed < 0 {
			return 0
		}
		return parsed
	}

	if token := reNumberToken.FindString(compact); token != "" {
		if parsed, err := strconv.ParseFloat(token, 64); err == nil {
			return parsed
		}
	}
	return 0
}

func normalizeNumericToken(compact string) string {
	if reThousandDots.MatchString(compact) {
		return strings.ReplaceAll(compact, ".", "")
	}
	if reThousandCommas.MatchString(compact) {
		return strings.ReplaceAll(compact, ",", "")
	}
	if strings.Contains(compact, ",") && !strings.Contains(compact, ".") {
		return strings.ReplaceAll(compact, ",", ".")
	}
	return compact
}
