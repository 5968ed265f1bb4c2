package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/acadservice/internal/app/models"
)

var budi = models.Student{NIM: "2201001", Nama: "Budi Santoso", Jurusan: "Informatika", Angkatan: 2022}

func records(pairs ...interface{}) []models.GradeRecord {
	out := make([]models.GradeRecord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.GradeRecord{NIM: budi.NIM, Nilai: pairs[i].(string), SKS: pairs[i+1].(int)})
	}
	return out
}

func TestComputeWeightedAverage(t *testing.T) {
	res := Compute(budi, records("A", 3, "B", 4))

	assert.Equal(t, "2201001", res.NIM)
	assert.Equal(t, "Budi Santoso", res.Nama)
	assert.Equal(t, "Informatika", res.Jurusan)
	assert.Equal(t, 7, res.TotalSKS)
	assert.Equal(t, 3.43, res.IPS)
}

func TestComputeUnknownGradeCountsCredits(t *testing.T) {
	res := Compute(budi, records("A", 3, "F", 3))

	assert.Equal(t, 6, res.TotalSKS)
	assert.Equal(t, 2.0, res.IPS)
}

func TestComputeNormalizesGrades(t *testing.T) {
	plain := Compute(budi, records("A", 3, "B+", 2))
	messy := Compute(budi, records(" a ", 3, "b+\t", 2))

	assert.Equal(t, plain, messy)
}

func TestComputeEmptyRecords(t *testing.T) {
	res := Compute(budi, nil)

	assert.Equal(t, 0, res.TotalSKS)
	assert.Equal(t, 0.0, res.IPS)
}

func TestComputeZeroCredits(t *testing.T) {
	res := Compute(budi, records("A", 0))

	assert.Equal(t, 0, res.TotalSKS)
	assert.Equal(t, 0.0, res.IPS)
}

func TestComputeIsIdempotentAndOrderIndependent(t *testing.T) {
	in := records("A", 3, "B-", 2, "C+", 4, "D", 1, "A-", 3, "E", 2)
	first := Compute(budi, in)
	assert.Equal(t, first, Compute(budi, in))

	reversed := make([]models.GradeRecord, len(in))
	for i, r := range in {
		reversed[len(in)-1-i] = r
	}
	assert.Equal(t, first, Compute(budi, reversed))

	rotated := append(append([]models.GradeRecord{}, in[2:]...), in[:2]...)
	assert.Equal(t, first, Compute(budi, rotated))
}

func TestWeightTable(t *testing.T) {
	want := map[string]float64{
		"A": 4.0, "A-": 3.75, "B+": 3.5, "B": 3.0, "B-": 2.75,
		"C+": 2.5, "C": 2.0, "D": 1.0, "E": 0.0,
	}
	assert.Equal(t, want, Weights())

	for grade, w := range want {
		got, ok := Weight(grade)
		assert.True(t, ok, grade)
		assert.Equal(t, w, got, grade)
	}
}

func TestWeightUnknownGrade(t *testing.T) {
	for _, g := range []string{"F", "", "AB", "A+"} {
		w, ok := Weight(g)
		assert.False(t, ok, g)
		assert.Equal(t, UnknownGradeWeight, w, g)
	}
}

func TestWeightsReturnsCopy(t *testing.T) {
	table := Weights()
	table["A"] = 0

	w, _ := Weight("A")
	assert.Equal(t, 4.0, w)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{24.0 / 7.0, 3.43},
		{8.0 / 3.0, 2.67},
		{3.0, 3.0},
		{0.0, 0.0},
		// exact binary ties go to the even digit
		{3.125, 3.12},
		{0.125, 0.12},
		{0.375, 0.38},
		// stored just below the tie
		{2.675, 2.67},
		{1.005, 1.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestComputeTieRoundsToEven(t *testing.T) {
	// 25 points over 8 credits is exactly 3.125
	res := Compute(budi, records("A", 4, "B", 3, "E", 1))

	assert.Equal(t, 8, res.TotalSKS)
	assert.Equal(t, 3.12, res.IPS)
}
