package shared

import "testing"

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, pageSize int
		wantPage       int
		wantPageSize   int
	}{
		{0, 0, 1, 20},
		{-3, -10, 1, 20},
		{2, 50, 2, 50},
		{1, 1000, 1, 100},
	}
	for _, tc := range cases {
		page, pageSize := NormalizePagination(tc.page, tc.pageSize)
		if page != tc.wantPage || pageSize != tc.wantPageSize {
			t.Fatalf("NormalizePagination(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.pageSize, page, pageSize, tc.wantPage, tc.wantPageSize)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int64
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}
