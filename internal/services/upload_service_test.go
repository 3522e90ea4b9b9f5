package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadService_SaveImage(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewUploadService(dir)
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}

	resp, err := svc.SaveImage("image/png", "avatar.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if !strings.HasPrefix(resp.Path, "/uploads/images/") {
		t.Errorf("Path = %q, want /uploads/images/ prefix", resp.Path)
	}
	if !strings.HasSuffix(resp.Filename, ".png") {
		t.Errorf("Filename = %q, want .png extension preserved", resp.Filename)
	}

	data, err := os.ReadFile(filepath.Join(dir, "images", resp.Filename))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestUploadService_RejectsWrongType(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}

	if _, err := svc.SaveImage("text/plain", "notes.txt", strings.NewReader("x")); err != ErrInvalidFileType {
		t.Errorf("SaveImage(text/plain) error = %v, want ErrInvalidFileType", err)
	}
	if _, err := svc.SaveImage("application/pdf", "resume.pdf", strings.NewReader("x")); err != ErrInvalidFileType {
		t.Errorf("SaveImage(application/pdf) error = %v, want ErrInvalidFileType", err)
	}
	if _, err := svc.SavePDF("image/png", "avatar.png", strings.NewReader("x")); err != ErrInvalidFileType {
		t.Errorf("SavePDF(image/png) error = %v, want ErrInvalidFileType", err)
	}
}

func TestUploadService_PDFGoesToResumeDir(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}

	resp, err := svc.SavePDF("application/pdf", "resume.pdf", strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("SavePDF: %v", err)
	}
	if !strings.HasPrefix(resp.Path, "/uploads/resume/") {
		t.Errorf("Path = %q, want /uploads/resume/ prefix", resp.Path)
	}
}

func TestUploadService_UniqueFilenames(t *testing.T) {
	svc, err := NewUploadService(t.TempDir())
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		resp, err := svc.SaveImage("image/jpeg", "photo.jpg", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("SaveImage: %v", err)
		}
		if seen[resp.Filename] {
			t.Fatalf("duplicate filename generated: %s", resp.Filename)
		}
		seen[resp.Filename] = true
	}
}
