package gas

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDataURI(t *testing.T) {
	got := DataURI("application/pdf", []byte("isi"))
	want := "data:application/pdf;base64,aXNp"
	if got != want {
		t.Errorf("DataURI = %q, want %q", got, want)
	}
}

func TestUploadMengirimPayloadGAS(t *testing.T) {
	var diterima map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
			t.Errorf("Content-Type = %q, GAS butuh text/plain", ct)
		}
		json.NewDecoder(r.Body).Decode(&diterima)
		json.NewEncoder(w).Encode(map[string]string{"status": "Sukses", "message": "https://drive.google.com/file/d/abc"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	url, err := client.Upload("JOB-1", "JSA", "jsa.pdf", "application/pdf", []byte("isi"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://drive.google.com/file/d/abc" {
		t.Errorf("url = %q", url)
	}

	if diterima["action"] != "upload" || diterima["idPekerjaan"] != "JOB-1" || diterima["jenisDokumen"] != "JSA" {
		t.Errorf("payload = %v", diterima)
	}
	if diterima["namaFile"] != "jsa.pdf" {
		t.Errorf("namaFile = %q", diterima["namaFile"])
	}
	if !strings.HasPrefix(diterima["fileData"], "data:application/pdf;base64,") {
		t.Errorf("fileData = %q", diterima["fileData"])
	}
}

func TestUploadGagalMeneruskanPesanGAS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "Gagal", "message": "Folder penuh"})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Upload("JOB-1", "JSA", "jsa.pdf", "application/pdf", nil)
	if err == nil || err.Error() != "Folder penuh" {
		t.Errorf("err = %v, want pesan dari GAS", err)
	}
}

func TestFolderIDDiambilSekali(t *testing.T) {
	hitungGetFolder := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		switch payload["action"] {
		case "getFolder":
			hitungGetFolder++
			json.NewEncoder(w).Encode(map[string]string{"status": "OK", "folderId": "folder-123"})
		case "list":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":   "OK",
				"folderId": "folder-123",
				"files":    []map[string]string{{"id": "f1", "name": "jsa.pdf", "webViewLink": "https://drive/f1"}},
			})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	for i := 0; i < 3; i++ {
		folderID, files, err := client.ListFolder()
		if err != nil {
			t.Fatalf("ListFolder: %v", err)
		}
		if folderID != "folder-123" {
			t.Errorf("folderID = %q", folderID)
		}
		if len(files) != 1 || files[0].Name != "jsa.pdf" {
			t.Errorf("files = %+v", files)
		}
	}

	if hitungGetFolder != 1 {
		t.Errorf("getFolder dipanggil %d kali, want 1 (harus di-cache)", hitungGetFolder)
	}
}
