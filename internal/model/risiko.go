package model

import "gorm.io/gorm"

// Risiko adalah satu baris penilaian risiko milik sebuah Pekerjaan.
// L dan C disimpan apa adanya dari form (contoh "3 - Mungkin Terjadi"),
// angka skalanya diambil saat agregasi rekap.
type Risiko struct {
	gorm.Model
	IDPekerjaan string `json:"idPekerjaan" gorm:"column:id_pekerjaan;index"`
	Aktivitas   string `json:"aktivitas"`
	Bahaya      string `json:"bahaya"`
	L           string `json:"l"`
	C           string `json:"c"`
	RR          string `json:"rr" gorm:"column:rr"`
}
