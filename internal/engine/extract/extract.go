// Package extract derives typed parameters from raw transcript text using
// keyword-anchored word scanning. Every extractor is total: when the anchor or
// parameter is missing it falls back to a documented default.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultCity is used when a weather request names no city; overridable per
// dispatcher via configuration.
const DefaultCity = "Hyderabad"

// ContactName returns the words following the first word containing
// "call", "message" or "text", joined by spaces with their original casing
// intact so responses echo the name as spoken. Defaults to "contact".
func ContactName(transcript string) string {
	words := strings.Fields(transcript)
	lowered := strings.Fields(strings.ToLower(transcript))
	for i, w := range lowered {
		if strings.Contains(w, "call") || strings.Contains(w, "message") || strings.Contains(w, "text") {
			if i < len(words)-1 {
				return strings.TrimSpace(strings.Join(words[i+1:], " "))
			}
			break
		}
	}
	return "contact"
}

// City returns the capitalized word following the first standalone
// "in", "at" or "for". Defaults to defaultCity (DefaultCity when empty).
func City(transcript, defaultCity string) string {
	if defaultCity == "" {
		defaultCity = DefaultCity
	}
	words := strings.Fields(strings.ToLower(transcript))
	for i, w := range words {
		if w == "in" || w == "at" || w == "for" {
			if i < len(words)-1 {
				return capitalize(words[i+1])
			}
			break
		}
	}
	return defaultCity
}

// Destination returns everything after the first standalone "to", joined by
// spaces. Defaults to "destination".
func Destination(transcript string) string {
	words := strings.Fields(strings.ToLower(transcript))
	for i, w := range words {
		if w == "to" {
			if i < len(words)-1 {
				return strings.TrimSpace(strings.Join(words[i+1:], " "))
			}
			break
		}
	}
	return "destination"
}

var timePattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(:|\s)\s*(\d{2})?\s*(am|pm)?`)

// AlarmTime scans for an "H[:MM] [am|pm]" pattern and returns the 24-hour
// clock values. Defaults to 07:00 when no time is present.
func AlarmTime(transcript string) (hour, minute int) {
	m := timePattern.FindStringSubmatch(transcript)
	if m == nil {
		return 7, 0
	}

	hour, _ = strconv.Atoi(m[1])
	if m[3] != "" {
		minute, _ = strconv.Atoi(m[3])
	}

	switch strings.ToLower(m[4]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return hour, minute
}

// Operator identifies the arithmetic operation named in a transcript.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var digitRun = regexp.MustCompile(`\d+`)

// Arithmetic pulls all maximal digit runs from the transcript, in encounter
// order, and the operator keyword. Keyword priority follows the reference
// assistant: add, then subtract, then multiply, then divide.
func Arithmetic(transcript string) (operands []int, op Operator) {
	t := strings.ToLower(transcript)

	for _, run := range digitRun.FindAllString(t, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		operands = append(operands, n)
	}

	switch {
	case containsAny(t, "plus", "+", "add"):
		op = OpAdd
	case containsAny(t, "minus", "-", "subtract"):
		op = OpSubtract
	case containsAny(t, "multiply", "times", "×"):
		op = OpMultiply
	case containsAny(t, "divide", "÷"):
		op = OpDivide
	}

	return operands, op
}

func containsAny(t string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

// SearchQuery strips the search trigger words and returns the remaining
// query text. Empty means the user named nothing to search for.
func SearchQuery(transcript string) string {
	q := strings.ToLower(transcript)
	q = strings.ReplaceAll(q, "search for", "")
	q = strings.ReplaceAll(q, "search", "")
	q = strings.ReplaceAll(q, "google", "")
	return strings.TrimSpace(q)
}
