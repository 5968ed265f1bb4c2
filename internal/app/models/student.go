package models

// Student defines the student model based on the 'mahasiswa' table
type Student struct {
	NIM      string `json:"nim" db:"nim" example:"2201001"`             // Student identification number
	Nama     string `json:"nama" db:"nama" example:"Budi Santoso"`      // Full name
	Jurusan  string `json:"jurusan" db:"jurusan" example:"Informatika"` // Major/department
	Angkatan int    `json:"angkatan" db:"angkatan" example:"2022"`      // Enrollment cohort year
}
