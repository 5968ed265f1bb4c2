package models

// CourseCredits maps a course code to its credit hours ('mata_kuliah' table)
type CourseCredits struct {
	KodeMK string `json:"kode_mk" db:"kode_mk" example:"IF101"`
	SKS    int    `json:"sks" db:"sks" example:"3"`
}
