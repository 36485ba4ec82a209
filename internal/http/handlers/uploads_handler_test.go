package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/stayvista/stayvista-api/internal/http/handlers"
	"github.com/stayvista/stayvista-api/internal/platform/storage"
)

func setupUploadServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()

	files, err := storage.NewDisk(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatal(err)
	}

	r := chi.NewRouter()
	r.Post("/upload", handlers.NewUploadsHandler(files).Upload)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, dir
}

func TestUpload_SavesFileAndReturnsPath(t *testing.T) {
	server, dir := setupUploadServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("avatar", "avatar.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	req, err := http.NewRequest("POST", server.URL+"/upload", &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var path string
	if err := json.NewDecoder(resp.Body).Decode(&path); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(path, "uploads/") {
		t.Fatalf("Expected path under uploads/, got %q", path)
	}
	if !strings.HasSuffix(path, "avatar.png") {
		t.Fatalf("Expected original name suffix, got %q", path)
	}

	data, err := os.ReadFile(filepath.Join(dir, path))
	if err != nil {
		t.Fatalf("Saved file missing: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Fatalf("Saved file content mismatch: %q", data)
	}
}

func TestUpload_MissingFile_BadRequest(t *testing.T) {
	server, _ := setupUploadServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("name", "no file here")
	writer.Close()

	req, err := http.NewRequest("POST", server.URL+"/upload", &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", resp.StatusCode)
	}
}
