// Package grading computes the credit-weighted grade point average (IPS)
// from letter grades and course credits.
package grading

import (
	"strconv"
	"strings"

	"github.com/yigit/acadservice/internal/app/models"
)

// weights maps a normalized letter grade to its numeric weight.
// It is never mutated after package initialization.
var weights = map[string]float64{
	"A":  4.0,
	"A-": 3.75,
	"B+": 3.5,
	"B":  3.0,
	"B-": 2.75,
	"C+": 2.5,
	"C":  2.0,
	"D":  1.0,
	"E":  0.0,
}

// UnknownGradeWeight is the weight of any letter grade missing from the table.
const UnknownGradeWeight = 0.0

// NormalizeGrade trims surrounding whitespace and upper-cases a letter grade.
func NormalizeGrade(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}

// Weight returns the weight of a letter grade and whether the grade is known.
// Unknown grades weigh UnknownGradeWeight.
func Weight(grade string) (float64, bool) {
	w, ok := weights[NormalizeGrade(grade)]
	if !ok {
		return UnknownGradeWeight, false
	}
	return w, true
}

// Weights returns a copy of the grade weight table.
func Weights() map[string]float64 {
	out := make(map[string]float64, len(weights))
	for k, v := range weights {
		out[k] = v
	}
	return out
}

// Totals accumulates credits and weighted points over a set of grade records.
type Totals struct {
	Credits int
	Points  float64
}

// Add folds one record into the totals.
func (t *Totals) Add(grade string, credits int) {
	w, _ := Weight(grade)
	t.Credits += credits
	t.Points += w * float64(credits)
}

// Average returns Points/Credits rounded to two decimals, or 0 when no credits were taken.
func (t Totals) Average() float64 {
	if t.Credits <= 0 {
		return 0.0
	}
	return Round2(t.Points / float64(t.Credits))
}

// Round2 rounds v to two decimal places based on its exact binary value.
// Exact ties go to the even digit, so 3.125 becomes 3.12 while 2.675, stored
// just below the tie, becomes 2.67.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Compute reduces a student's grade records to a GpaResult.
// An empty record set yields IPS 0 and zero credits; callers report
// "not found" before getting here when the store returned nothing.
func Compute(student models.Student, records []models.GradeRecord) models.GpaResult {
	var totals Totals
	for _, r := range records {
		totals.Add(r.Nilai, r.SKS)
	}

	return models.GpaResult{
		NIM:      student.NIM,
		Nama:     student.Nama,
		Jurusan:  student.Jurusan,
		TotalSKS: totals.Credits,
		IPS:      totals.Average(),
	}
}
