package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	KeputusanBelumDitentukan = "Belum Ditentukan"
	KeputusanGantiJam        = "Ganti Jam"
	KeputusanMitigasiLain    = "Mitigasi Tambahan"

	StatusSimopsTerkendali      = "SIMOPS Terkendali"
	StatusSimopsBelumTerkendali = "Belum Terkendali"
)

// Simops adalah catatan koordinasi untuk pekerjaan yang bentrok di satu
// area + tanggal. Satu record per (Area, Tanggal), dijaga lewat
// lookup-before-insert di repository.
type Simops struct {
	gorm.Model
	IDSimops          string         `json:"idSimops" gorm:"column:id_simops;uniqueIndex;not null"`
	Tanggal           string         `json:"tanggal"` // Format dd/MM/yyyy
	Area              string         `json:"area"`
	KonflikJobs       string         `json:"konflikJobs"` // ID pekerjaan dipisah koma
	KeputusanMitigasi string         `json:"keputusanMitigasi"`
	GabunganRisk      datatypes.JSON `json:"gabunganRisk"`
	DetailMitigasi    datatypes.JSON `json:"detailMitigasi"`
	ResidualRisk      datatypes.JSON `json:"residualRisk"` // Null sampai residual diinput
	WaktuInput        string         `json:"waktuInput"`
}

// GabunganRisk adalah ringkasan risiko gabungan dari job yang bentrok.
// Field-nya mengikuti payload frontend; RR/CombinedRR pointer supaya bisa
// dibedakan antara 0 dan tidak diisi.
type GabunganRisk struct {
	RR         *int             `json:"rr,omitempty"`
	CombinedRR *int             `json:"combinedRR,omitempty"`
	MaxL       int              `json:"maxL"`
	MaxC       int              `json:"maxC"`
	Detail     []RisikoGabungan `json:"detail,omitempty"`
}

type RisikoGabungan struct {
	IDPekerjaan string `json:"idPekerjaan"`
	Aktivitas   string `json:"aktivitas"`
	L           int    `json:"l"`
	C           int    `json:"c"`
	RR          int    `json:"rr"`
}

// Dua varian detail mitigasi. Field Type membedakan varian saat dibaca lagi.
const (
	DetailTypeGantiJam = "ganti_jam"
	DetailTypeLainnya  = "mitigasi_lainnya"
)

type PerubahanJam struct {
	JobID      string `json:"jobId"`
	JamMulai   string `json:"newStart"`
	JamSelesai string `json:"newEnd"`
}

type DetailGantiJam struct {
	Type    string         `json:"type"`
	Changes []PerubahanJam `json:"changes"`
}

type DetailMitigasiLainnya struct {
	Type          string `json:"type"`
	NamaSO        string `json:"namaSO"`
	NamaSI        string `json:"namaSI"`
	Leader        string `json:"leader"`
	JumlahPekerja int    `json:"jumlahPekerja"`
}

type ResidualRisk struct {
	L          int    `json:"l"`
	C          int    `json:"c"`
	RR         int    `json:"rr"`
	WaktuInput string `json:"waktuInput"`
}
