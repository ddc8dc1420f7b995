// file: internals/helpers/pagination_test.go
package helper

import (
	"strings"
	"testing"
)

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name      string
		total     int64
		page      int
		perPage   int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"first of many", 45, 1, 10, 5, true, false},
		{"middle page", 45, 3, 10, 5, true, true},
		{"last page", 45, 5, 10, 5, false, true},
		{"empty result still has one page", 0, 1, 10, 1, false, false},
		{"defaults guard bad input", 45, 0, 0, 3, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantPages)
			}
			if p.HasNext != tc.wantNext || p.HasPrev != tc.wantPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v", p.HasNext, p.HasPrev, tc.wantNext, tc.wantPrev)
			}
		})
	}
}

func TestGenerateUniqueFilename(t *testing.T) {
	a := GenerateUniqueFilename("photo of me.jpg")
	b := GenerateUniqueFilename("photo of me.jpg")
	if a == b {
		t.Fatal("filenames must be unique")
	}
	if strings.Contains(a, " ") {
		t.Fatalf("unsafe characters should be replaced: %q", a)
	}
	if strings.HasSuffix(a, ".jpg") {
		t.Fatalf("extension should be stripped: %q", a)
	}
}
