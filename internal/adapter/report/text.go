package report

import (
	"encoding/csv"
	"regexp"
	"strconv"
	"strings"

	"campaign-insights/internal/core/domain"
)

var (
	countPattern   = regexp.MustCompile(`([\d,]+)`)
	percentPattern = regexp.MustCompile(`\(([\d.]+)%\)`)
	titleStrip     = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,!?]`)
	spaces         = regexp.MustCompile(`\s+`)
)

func stripBOM(text string) string {
	return strings.TrimPrefix(text, "\ufeff")
}

// lines returns the trimmed, non-empty lines of a report.
func lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(stripBOM(text), "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// fields splits one CSV line into its trimmed, non-empty cells.
func fields(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	record, err := r.Read()
	if err != nil {
		record = []string{line}
	}
	out := make([]string, 0, len(record))
	for _, f := range record {
		if f = strings.TrimSpace(strings.Trim(strings.TrimSpace(f), `"`)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// keyValue reads a `"Key:","Value"` line. The trailing colon is dropped
// from the key. ok is false when the line has fewer than two cells.
func keyValue(line string) (key, value string, ok bool) {
	f := fields(line)
	if len(f) < 2 {
		return "", "", false
	}
	return strings.TrimSpace(strings.TrimSuffix(f[0], ":")), f[1], true
}

// sectionName returns the heading of a one-cell line such as
// `"Campaign results"`.
func sectionName(line string) (string, bool) {
	f := fields(line)
	if len(f) != 1 {
		return "", false
	}
	return f[0], true
}

// parseCount reads an integer that may carry thousands separators.
func parseCount(value string) (domain.Optional[int64], error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return domain.None[int64](), err
	}
	return domain.Some(n), nil
}

// parsePercent reads "27.78%" as 27.78.
func parsePercent(value string) (domain.Optional[float64], error) {
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "%"))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return domain.None[float64](), err
	}
	return domain.Some(f), nil
}

// countAndPercent reads values such as "1,489 (38.91%)". Either part is
// unavailable when missing.
func countAndPercent(value string) (domain.Optional[int64], domain.Optional[float64]) {
	count := domain.None[int64]()
	if m := countPattern.FindStringSubmatch(value); m != nil {
		if n, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64); err == nil {
			count = domain.Some(n)
		}
	}
	pct := domain.None[float64]()
	if m := percentPattern.FindStringSubmatch(value); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			pct = domain.Some(f)
		}
	}
	return count, pct
}

// rateOf returns part/whole as a percentage, unavailable when either is
// unknown or whole is zero.
func rateOf(part, whole domain.Optional[int64]) domain.Optional[float64] {
	p, ok := part.Get()
	w, wok := whole.Get()
	if !ok || !wok || w <= 0 {
		return domain.None[float64]()
	}
	return domain.Some(float64(p) / float64(w) * 100)
}

// SanitizeTitle strips everything but letters, digits, whitespace and
// -.,!? from a subject line so it can stand in as a campaign title.
func SanitizeTitle(subject string) string {
	cleaned := titleStrip.ReplaceAllString(subject, "")
	cleaned = strings.TrimSpace(spaces.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return "Untitled"
	}
	return cleaned
}
