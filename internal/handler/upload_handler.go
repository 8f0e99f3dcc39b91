package handler

import (
	"io"
	"time"

	"simops-backend/internal/gas"
	"simops-backend/internal/model"
	"simops-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UploadHandler struct {
	gas           *gas.Client
	dokumenRepo   repository.DokumenRepository
	pekerjaanRepo repository.PekerjaanRepository
}

func NewUploadHandler(gasClient *gas.Client, dokumenRepo repository.DokumenRepository, pekerjaanRepo repository.PekerjaanRepository) *UploadHandler {
	return &UploadHandler{gas: gasClient, dokumenRepo: dokumenRepo, pekerjaanRepo: pekerjaanRepo}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	idPekerjaan := c.FormValue("idPekerjaan")
	jenisDokumen := c.FormValue("jenisDokumen")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tidak ada file yang diupload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	namaFile := fileHeader.Filename
	if namaFile == "" {
		namaFile = idPekerjaan + "_" + jenisDokumen + "_" + uuid.NewString()
	}

	url, err := h.gas.Upload(idPekerjaan, jenisDokumen, namaFile, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	dokumen := model.Dokumen{
		IDPekerjaan:  idPekerjaan,
		JenisDokumen: jenisDokumen,
		URL:          url,
		WaktuUpload:  time.Now().Format(formatTimestamp),
	}
	if err := h.dokumenRepo.Create(dokumen); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Upload sukses berarti status dokumen naik, kelengkapan dihitung ulang
	if pekerjaan, err := h.pekerjaanRepo.GetByIDPekerjaan(idPekerjaan); err == nil {
		pekerjaan.StatusDokumen = model.StatusDokumenTerupload
		h.pekerjaanRepo.Update(pekerjaan)
	}
	perbaruiKelengkapan(h.pekerjaanRepo, idPekerjaan)

	return c.JSON(fiber.Map{"message": "Berhasil upload via GAS", "url": url})
}

func (h *UploadHandler) TestDrive(c *fiber.Ctx) error {
	folderID, files, err := h.gas.ListFolder()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":    "OK",
		"folderId":  folderID,
		"folderUrl": "https://drive.google.com/drive/folders/" + folderID,
		"files":     files,
	})
}
