package mailer

import (
	"fmt"

	"simops-backend/config"
	"simops-backend/internal/model"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim notifikasi ke email admin. Kalau SMTP_HOST kosong, semua
// kiriman di-skip supaya development lokal tidak butuh server mail.
type Mailer struct {
	host       string
	port       int
	user       string
	pass       string
	adminEmail string
}

func New() *Mailer {
	return &Mailer{
		host:       config.GetEnv("SMTP_HOST", ""),
		port:       config.GetEnvAsInt("SMTP_PORT", 587),
		user:       config.GetEnv("SMTP_USER", ""),
		pass:       config.GetEnv("SMTP_PASS", ""),
		adminEmail: config.GetEnv("ADMIN_EMAIL", "copilotsimops@gmail.com"),
	}
}

// SendRegistrasiBaru memberi tahu admin ada pendaftaran yang menunggu approval.
func (m *Mailer) SendRegistrasiBaru(akun model.Akun) error {
	if m.host == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", "Registrasi akun baru menunggu persetujuan")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Akun baru mendaftar dan berstatus Pending.\n\nUsername: %s\nRole: %s\nArea: %s\nUnit: %s\nTanggal: %s\n",
		akun.Username, akun.Role, akun.Area, akun.Unit, akun.TanggalRegistrasi,
	))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return dialer.DialAndSend(msg)
}
