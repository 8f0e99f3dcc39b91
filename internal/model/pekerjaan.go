package model

import "gorm.io/gorm"

const (
	StatusDokumenBelumLengkap = "Belum Lengkap"
	StatusDokumenTerupload    = "Dokumen Terupload"
	StatusDokumenApproved     = "APPROVED"

	StatusRisikoBelumDinilai = "Belum Dinilai"
	StatusRisikoSudahDinilai = "Sudah Dinilai"

	KelengkapanLengkap      = "Lengkap"
	KelengkapanBelumLengkap = "Belum Lengkap"
)

// Pekerjaan adalah satu job work-permit. IDPekerjaan (JOB-<timestamp>) adalah
// kunci yang dipakai frontend dan tabel lain, bukan primary key GORM.
type Pekerjaan struct {
	gorm.Model
	IDPekerjaan       string `json:"id" gorm:"column:id_pekerjaan;uniqueIndex;not null"`
	Timestamp         string `json:"timestamp"`
	NamaPT            string `json:"namaPT" gorm:"column:nama_pt"`
	Kompartemen       string `json:"kompartemen"`
	Unit              string `json:"unit"`
	JenisPekerjaan    string `json:"jenisPekerjaan"`
	NamaPekerjaan     string `json:"namaPekerjaan"`
	Area              string `json:"area"`
	PJNama            string `json:"pj" gorm:"column:pj_nama"`
	TanggalKerja      string `json:"tanggal"` // Format dd/MM/yyyy
	JamMulai          string `json:"jamMulai"`
	JamSelesai        string `json:"jamSelesai"`
	StatusDokumen     string `json:"statusDoc"`
	StatusRisiko      string `json:"statusRisk"`
	StatusKelengkapan string `json:"statusKelengkapan"`
}
