package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext(t *testing.T) {
	cases := []struct {
		query      string
		limit, off int
	}{
		{"", DefaultLimit, 0},
		{"limit=50&offset=10", 50, 10},
		{"limit=500", MaxLimit, 0},
		{"limit=-1&offset=-5", DefaultLimit, 0},
		{"limit=abc", DefaultLimit, 0},
	}
	for _, tc := range cases {
		p := FromContext(ctxWithQuery(tc.query))
		if p.Limit != tc.limit || p.Offset != tc.off {
			t.Errorf("query %q: got limit=%d offset=%d, want limit=%d offset=%d",
				tc.query, p.Limit, p.Offset, tc.limit, tc.off)
		}
	}
}

func TestNewResponse(t *testing.T) {
	r := NewResponse([]int{1, 2, 3}, 10, 3, 0)
	if !r.HasMore {
		t.Error("expected has_more with 10 total and page of 3")
	}

	last := NewResponse([]int{1}, 10, 3, 9)
	if last.HasMore {
		t.Error("last page should not report has_more")
	}
}

func TestParamsPaging(t *testing.T) {
	p := Params{Limit: 20, Offset: 40}
	if !p.HasNext(100) {
		t.Error("expected next page at offset 40 of 100")
	}
	if p.HasNext(60) {
		t.Error("no next page when offset+limit reaches total")
	}
	if p.NextOffset() != 60 {
		t.Errorf("expected next offset 60, got %d", p.NextOffset())
	}
}
