package constants

import (
	"strings"
	"testing"
)

func TestIndonesianProvincesComplete(t *testing.T) {
	if len(IndonesianProvinces) != 38 {
		t.Fatalf("expected 38 provinces, got %d", len(IndonesianProvinces))
	}

	seen := map[string]struct{}{}
	for _, province := range IndonesianProvinces {
		key := strings.ToLower(province)
		if _, dup := seen[key]; dup {
			t.Fatalf("duplicate province %q", province)
		}
		seen[key] = struct{}{}
	}
}

func TestIsIndonesianProvince(t *testing.T) {
	if !IsIndonesianProvince("DKI Jakarta") {
		t.Fatalf("expected canonical name valid")
	}
	if !IsIndonesianProvince("  papua barat daya  ") {
		t.Fatalf("expected case-insensitive trimmed match")
	}
	if IsIndonesianProvince("Jakarta") {
		t.Fatalf("expected partial name rejected")
	}
}

func TestProvinceSlug(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"DKI Jakarta", "dki-jakarta"},
		{"DI Yogyakarta", "di-yogyakarta"},
		{" Nusa Tenggara Barat ", "nusa-tenggara-barat"},
	}
	for _, tc := range cases {
		if got := ProvinceSlug(tc.name); got != tc.want {
			t.Fatalf("ProvinceSlug(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
