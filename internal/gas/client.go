package gas

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Client memanggil web app Google Apps Script yang menulis file ke Drive dan
// tahu isi folder upload. GAS butuh body text/plain dan sering membalas lewat
// redirect 302, http.Client default sudah mengikuti redirect.
type Client struct {
	URL  string
	HTTP *http.Client

	folderOnce sync.Once
	folderID   string
	folderErr  error
}

func NewClient(url string) *Client {
	return &Client{URL: url, HTTP: http.DefaultClient}
}

type gasResponse struct {
	Status   string     `json:"status"`
	Message  string     `json:"message"`
	FolderID string     `json:"folderId"`
	Files    []FileInfo `json:"files"`
}

type FileInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WebViewLink string `json:"webViewLink"`
}

func (c *Client) call(payload interface{}) (*gasResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Post(c.URL, "text/plain;charset=utf-8", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result gasResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("respon GAS tidak valid: %w", err)
	}
	return &result, nil
}

// DataURI mengubah isi file jadi data URI base64 sesuai format yang
// diharapkan script upload.
func DataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// Upload mengirim file ke GAS dan mengembalikan URL file di Drive.
func (c *Client) Upload(idPekerjaan, jenisDokumen, namaFile, mimeType string, data []byte) (string, error) {
	result, err := c.call(map[string]string{
		"action":       "upload",
		"idPekerjaan":  idPekerjaan,
		"jenisDokumen": jenisDokumen,
		"namaFile":     namaFile,
		"fileData":     DataURI(mimeType, data),
	})
	if err != nil {
		return "", err
	}
	if result.Status != "Sukses" {
		if result.Message == "" {
			return "", errors.New("Gagal upload ke GAS")
		}
		return "", errors.New(result.Message)
	}
	return result.Message, nil
}

// FolderID mengambil id folder upload sekali saja lalu menyimpannya.
func (c *Client) FolderID() (string, error) {
	c.folderOnce.Do(func() {
		result, err := c.call(map[string]string{"action": "getFolder"})
		if err != nil {
			c.folderErr = err
			return
		}
		if result.FolderID == "" {
			c.folderErr = errors.New("GAS tidak mengembalikan folderId")
			return
		}
		c.folderID = result.FolderID
	})
	return c.folderID, c.folderErr
}

// ListFolder mengembalikan isi folder upload untuk endpoint diagnostik.
func (c *Client) ListFolder() (string, []FileInfo, error) {
	folderID, err := c.FolderID()
	if err != nil {
		return "", nil, err
	}

	result, err := c.call(map[string]string{"action": "list", "folderId": folderID})
	if err != nil {
		return "", nil, err
	}
	return folderID, result.Files, nil
}
