package models

// GradeRecord is one 'krs' row joined with the course's credit hours.
type GradeRecord struct {
	NIM    string `json:"nim" db:"nim"`
	KodeMK string `json:"kode_mk,omitempty" db:"kode_mk"`
	Nilai  string `json:"nilai" db:"nilai"` // Letter grade as stored, not normalized
	SKS    int    `json:"sks" db:"sks"`
}

// GpaResult is the computed grade point average for a student. It is never persisted.
type GpaResult struct {
	NIM      string  `json:"nim" example:"2201001"`
	Nama     string  `json:"nama" example:"Budi Santoso"`
	Jurusan  string  `json:"jurusan" example:"Informatika"`
	TotalSKS int     `json:"total_sks" example:"7"`
	IPS      float64 `json:"ips" example:"3.43"`
}
