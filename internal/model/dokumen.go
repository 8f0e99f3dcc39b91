package model

import "gorm.io/gorm"

// Dokumen dicatat setelah file berhasil diupload ke Drive lewat Apps Script.
type Dokumen struct {
	gorm.Model
	IDPekerjaan  string `json:"idPekerjaan" gorm:"column:id_pekerjaan;index"`
	JenisDokumen string `json:"jenis"`
	URL          string `json:"url"`
	WaktuUpload  string `json:"waktu"`
}
