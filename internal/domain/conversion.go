package domain

import (
	"math"
	"strconv"
	"strings"
)

// ResultPlaceholder is shown when there is no meaningful result.
const ResultPlaceholder = "—"

// ConversionRequest is built fresh for every submission.
type ConversionRequest struct {
	ID       string
	Category Category
	FromUnit string
	ToUnit   string
	Value    float64
}

// ConversionResult is the parsed service answer.
type ConversionResult struct {
	Result float64
}

// ParseValue validates raw user text and returns a finite number.
// The first comma is read as the decimal separator ("12,5" == "12.5").
func ParseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &OpError{Op: "domain.parse_value", Kind: KindEmptyInput, Err: ErrEmptyInput}
	}

	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &OpError{Op: "domain.parse_value", Kind: KindInvalidNumber, Err: ErrInvalidNumber}
	}
	return v, nil
}

// FormatNumber renders v in its shortest plain form (37, 12.5, 98.6).
func FormatNumber(v float64) string {
	if v == 0 {
		// avoids "-0"
		return "0"
	}
	if math.Abs(v) >= 1e21 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RoundResult rounds to 6 decimal places.
func RoundResult(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 6, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Describe renders "<value> <from> = <rounded result> <to>".
func Describe(req ConversionRequest, res ConversionResult) string {
	return FormatNumber(req.Value) + " " + req.FromUnit + " = " +
		FormatNumber(RoundResult(res.Result)) + " " + req.ToUnit
}
