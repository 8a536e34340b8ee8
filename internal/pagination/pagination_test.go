package pagination

import "testing"

func TestDefaults(t *testing.T) {
	t.Run("fills_default_limit", func(t *testing.T) {
		p := PageRequest{}
		p.Defaults()
		if p.Limit != DefaultLimit {
			t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
		}
	})

	t.Run("clamps_to_max", func(t *testing.T) {
		p := PageRequest{Limit: 500}
		p.Defaults()
		if p.Limit != MaxLimit {
			t.Errorf("expected clamped limit %d, got %d", MaxLimit, p.Limit)
		}
	})

	t.Run("keeps_valid_values", func(t *testing.T) {
		p := PageRequest{Limit: 25, Offset: 50}
		p.Defaults()
		if p.Limit != 25 || p.Offset != 50 {
			t.Errorf("expected values untouched, got %+v", p)
		}
	})
}

func TestNewPageResponse(t *testing.T) {
	t.Run("full_page_has_more", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2, 3}, PageRequest{Limit: 3})
		if !resp.HasMore {
			t.Error("expected has_more for a full page")
		}
	})

	t.Run("underfull_page_ends_set", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2}, PageRequest{Limit: 3})
		if resp.HasMore {
			t.Error("expected has_more false for an underfull page")
		}
	})

	t.Run("nil_data_becomes_empty_slice", func(t *testing.T) {
		resp := NewPageResponse[int](nil, PageRequest{Limit: 3})
		if resp.Data == nil || len(resp.Data) != 0 {
			t.Errorf("expected empty slice, got %v", resp.Data)
		}
	})
}
