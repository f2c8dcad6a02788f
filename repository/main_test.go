package repository

import "testing"

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults for zero values", page: 0, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "negative values", page: -3, limit: -1, wantPage: 1, wantLimit: 10},
		{name: "valid values pass through", page: 2, limit: 25, wantPage: 2, wantLimit: 25},
		{name: "limit capped", page: 1, limit: 500, wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePage(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Fatalf("expected (%d, %d) got (%d, %d)", tt.wantPage, tt.wantLimit, page, limit)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int64
	}{
		{name: "empty", total: 0, limit: 10, want: 0},
		{name: "exact multiple", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "single item", total: 1, limit: 10, want: 1},
		{name: "zero limit", total: 50, limit: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.limit); got != tt.want {
				t.Fatalf("expected %d got %d", tt.want, got)
			}
		})
	}
}
