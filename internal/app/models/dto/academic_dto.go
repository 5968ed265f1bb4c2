package dto

import "github.com/yigit/acadservice/internal/app/models"

// IPSQuery is the query string of GET /api/acad/ips
type IPSQuery struct {
	NIM string `form:"nim" binding:"required,nim"`
}

// StudentResponse represents one row of the student listing
type StudentResponse struct {
	NIM      string `json:"nim" example:"2201001"`
	Nama     string `json:"nama" example:"Budi Santoso"`
	Jurusan  string `json:"jurusan" example:"Informatika"`
	Angkatan int    `json:"angkatan" example:"2022"`
}

// IPSResponse represents a computed grade point average
type IPSResponse struct {
	NIM      string  `json:"nim" example:"2201001"`
	Nama     string  `json:"nama" example:"Budi Santoso"`
	Jurusan  string  `json:"jurusan" example:"Informatika"`
	TotalSKS int     `json:"total_sks" example:"7"`
	IPS      float64 `json:"ips" example:"3.43"`
}

// FromStudents converts student models to their response shape
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, StudentResponse{
			NIM:      s.NIM,
			Nama:     s.Nama,
			Jurusan:  s.Jurusan,
			Angkatan: s.Angkatan,
		})
	}
	return out
}

// FromGpaResult converts a computed result to its response shape
func FromGpaResult(r *models.GpaResult) IPSResponse {
	return IPSResponse{
		NIM:      r.NIM,
		Nama:     r.Nama,
		Jurusan:  r.Jurusan,
		TotalSKS: r.TotalSKS,
		IPS:      r.IPS,
	}
}
