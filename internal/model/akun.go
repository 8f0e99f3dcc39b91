package model

import "gorm.io/gorm"

// Status akun: Pending (baru daftar), Active (disetujui admin), Rejected (ditolak)
const (
	StatusAkunPending  = "Pending"
	StatusAkunActive   = "Active"
	StatusAkunRejected = "Rejected"
)

type Akun struct {
	gorm.Model
	Username          string `json:"username" gorm:"uniqueIndex;not null"`
	Password          string `json:"-"` // Hash bcrypt, jangan pernah ikut ke response JSON
	Role              string `json:"role"`
	Area              string `json:"area"`
	Unit              string `json:"unit"`
	StatusAkun        string `json:"statusAkun"`
	TanggalRegistrasi string `json:"tanggalRegistrasi"`
	ApprovedBy        string `json:"approvedBy"`
	TanggalApproval   string `json:"tanggalApproval"`
}
