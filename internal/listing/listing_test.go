package listing

import "testing"

func TestSortRequest_Normalize(t *testing.T) {
	allowed := []string{"id", "name"}
	tests := []struct {
		name     string
		in       SortRequest
		wantSort string
		wantDir  string
	}{
		{"empty", SortRequest{}, "id", DirAsc},
		{"unknown_key", SortRequest{Sort: "secret", Dir: DirDesc}, "id", DirDesc},
		{"unknown_dir", SortRequest{Sort: "name", Dir: "DESC"}, "name", DirAsc},
		{"valid", SortRequest{Sort: "name", Dir: DirDesc}, "name", DirDesc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize(allowed, "id", DirAsc)
			if got.Sort != tt.wantSort || got.Dir != tt.wantDir {
				t.Errorf("expected %s/%s, got %s/%s", tt.wantSort, tt.wantDir, got.Sort, got.Dir)
			}
		})
	}
}

func TestSortRequest_Reverse(t *testing.T) {
	if (SortRequest{Dir: DirAsc}).Reverse() != DirDesc {
		t.Error("expected asc to reverse to desc")
	}
	if (SortRequest{Dir: DirDesc}).Reverse() != DirAsc {
		t.Error("expected desc to reverse to asc")
	}
	if !(SortRequest{Dir: DirDesc}).Desc() {
		t.Error("expected Desc for desc")
	}
}

func TestPageRequest_Defaults(t *testing.T) {
	var p PageRequest
	p.Defaults()
	if p.Page != 1 || p.PageSize != 20 {
		t.Errorf("expected 1/20, got %d/%d", p.Page, p.PageSize)
	}
	p = PageRequest{Page: 3, PageSize: 10}
	if p.Offset() != 20 {
		t.Errorf("expected offset 20, got %d", p.Offset())
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 2, 10, 21)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.Data == nil {
		t.Error("expected a non-nil empty slice")
	}
	if !resp.HasPrev() || !resp.HasNext() {
		t.Error("expected both neighbours on page 2 of 3")
	}
	last := NewPageResponse([]int{1}, 3, 10, 21)
	if last.HasNext() {
		t.Error("expected no next page on the last page")
	}
}
