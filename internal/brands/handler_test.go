package brands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/brandguard/brandguard/internal/brands"
	"github.com/brandguard/brandguard/pkg/pagination"
)

type mockSystem struct {
	listFn   func(ctx context.Context, page pagination.PageRequest, filters brands.Filters) (*pagination.PageResult[brands.Brand], error)
	findFn   func(ctx context.Context, id uuid.UUID) (*brands.Brand, error)
	createFn func(ctx context.Context, cmd brands.CreateCommand) (*brands.Brand, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockSystem) Handler() *brands.Handler {
	return newTestHandler(m)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters brands.Filters) (*pagination.PageResult[brands.Brand], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*brands.Brand, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) Create(ctx context.Context, cmd brands.CreateCommand) (*brands.Brand, error) {
	return m.createFn(ctx, cmd)
}

func (m *mockSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func newTestHandler(sys *mockSystem) *brands.Handler {
	return brands.NewHandler(
		sys,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)
}

func setupMux(h *brands.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func sampleBrand() brands.Brand {
	return brands.Brand{
		ID:     uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Name:   "Acme",
		UserID: "user-1",
	}
}

func TestHandlerList(t *testing.T) {
	b := sampleBrand()
	sys := &mockSystem{
		listFn: func(_ context.Context, _ pagination.PageRequest, _ brands.Filters) (*pagination.PageResult[brands.Brand], error) {
			result := pagination.NewPageResult([]brands.Brand{b}, 1, 1, 20)
			return &result, nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/brands", nil)
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result pagination.PageResult[brands.Brand]
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(result.Data) != 1 || result.Data[0].Name != "Acme" {
		t.Errorf("items = %+v, want one Acme brand", result.Data)
	}
}

func TestHandlerFind(t *testing.T) {
	b := sampleBrand()
	sys := &mockSystem{
		findFn: func(_ context.Context, id uuid.UUID) (*brands.Brand, error) {
			if id != b.ID {
				return nil, brands.ErrNotFound
			}
			return &b, nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	t.Run("existing brand", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/brands/"+b.ID.String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("unknown brand returns 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/brands/"+uuid.NewString(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/brands/not-a-uuid", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandlerCreate(t *testing.T) {
	sys := &mockSystem{
		createFn: func(_ context.Context, cmd brands.CreateCommand) (*brands.Brand, error) {
			if cmd.Name == "" {
				return nil, brands.ErrInvalidBrand
			}
			return &brands.Brand{ID: uuid.New(), Name: cmd.Name, UserID: cmd.UserID}, nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	t.Run("valid body returns 201", func(t *testing.T) {
		body, _ := json.Marshal(brands.CreateCommand{Name: "Acme", UserID: "user-1"})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/brands", bytes.NewReader(body))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/brands", bytes.NewReader([]byte("{")))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("invalid command returns 400", func(t *testing.T) {
		body, _ := json.Marshal(brands.CreateCommand{UserID: "user-1"})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/brands", bytes.NewReader(body))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHandlerDelete(t *testing.T) {
	b := sampleBrand()
	sys := &mockSystem{
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			if id != b.ID {
				return brands.ErrNotFound
			}
			return nil
		},
	}

	mux := setupMux(newTestHandler(sys))

	t.Run("existing brand returns 204", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/brands/"+b.ID.String(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rec.Code)
		}
	})

	t.Run("unknown brand returns 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/brands/"+uuid.NewString(), nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/brands/not-a-uuid", nil)
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", brands.ErrNotFound, http.StatusNotFound},
		{"duplicate", brands.ErrDuplicate, http.StatusConflict},
		{"invalid", brands.ErrInvalidBrand, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := brands.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values, _ := url.ParseQuery("name=acme&user_id=user-1")
	f := brands.FiltersFromQuery(values)

	if f.Name == nil || *f.Name != "acme" {
		t.Errorf("name filter = %v, want acme", f.Name)
	}
	if f.UserID == nil || *f.UserID != "user-1" {
		t.Errorf("user_id filter = %v, want user-1", f.UserID)
	}
}
