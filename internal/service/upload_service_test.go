package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/laga-admin/internal/config"
)

func TestNormalizeUploadScene(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"product", "product"},
		{" TV ", "tv"},
		{"", "common"},
		{"avatars", "common"},
	}
	for _, tc := range cases {
		if got := normalizeUploadScene(tc.raw); got != tc.want {
			t.Fatalf("normalizeUploadScene(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestIsAllowedExtension(t *testing.T) {
	allowed := []string{".jpg", "png", " .WEBP "}

	if !isAllowedExtension(".jpg", allowed) {
		t.Fatalf("expected .jpg allowed")
	}
	// 配置省略点号时也应命中
	if !isAllowedExtension(".png", allowed) {
		t.Fatalf("expected .png allowed")
	}
	if !isAllowedExtension(".webp", allowed) {
		t.Fatalf("expected .webp allowed case-insensitively")
	}
	if isAllowedExtension(".exe", allowed) {
		t.Fatalf("expected .exe denied")
	}
}

func TestRemoveUploadedFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Upload.Dir = dir
	svc := NewUploadService(cfg)

	stored := filepath.Join(dir, "product", "2026", "08", "a.jpg")
	if err := os.MkdirAll(filepath.Dir(stored), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(stored, []byte("jpg"), 0644); err != nil {
		t.Fatalf("write file failed: %v", err)
	}

	svc.Remove("/uploads/product/2026/08/a.jpg")
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err %v", err)
	}

	// 路径穿越被拒绝
	victim := filepath.Join(dir, "victim.txt")
	if err := os.WriteFile(victim, []byte("x"), 0644); err != nil {
		t.Fatalf("write victim failed: %v", err)
	}
	svc.Remove("/uploads/product/../victim.txt")
	if _, err := os.Stat(victim); err != nil {
		t.Fatalf("expected victim untouched, got %v", err)
	}

	// 目标不存在时静默返回
	svc.Remove("/uploads/product/2026/08/missing.jpg")
}
