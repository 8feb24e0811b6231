// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/scylla/models"
	"github.com/danielhkuo/scylla/testutil"
)

// fakeCompares stands in for the compare controller and counts calls
type fakeCompares struct {
	createCalls int
	updateCalls int
	removed     int64
	findResult  *models.AbCompare
	err         error
}

func (f *fakeCompares) List(ctx context.Context) ([]models.AbCompare, error) {
	return []models.AbCompare{{ID: "001", Name: "Name", URLA: "urlA", URLB: "urlB"}}, f.err
}

func (f *fakeCompares) FindByID(ctx context.Context, id string, expand bool) (*models.AbCompare, error) {
	return f.findResult, f.err
}

func (f *fakeCompares) CreateNew(ctx context.Context, payload models.AbCompare) (models.AbCompare, error) {
	f.createCalls++
	payload.ID = "001"
	return payload, f.err
}

func (f *fakeCompares) Update(ctx context.Context, id string, payload models.AbCompare) (models.AbCompare, error) {
	f.updateCalls++
	payload.ID = id
	return payload, f.err
}

func (f *fakeCompares) Remove(ctx context.Context, id string) (int64, error) {
	return f.removed, f.err
}

func newCompareHandler(f *fakeCompares) *ResourceHandler[models.AbCompare] {
	return NewResourceHandler[models.AbCompare]("compare", f,
		func(c models.AbCompare) string { return c.ID }, "")
}

func TestCompareCreate(t *testing.T) {
	t.Run("creates and returns the new id", func(t *testing.T) {
		fake := &fakeCompares{}
		h := newCompareHandler(fake)

		req := testutil.MakeRequest(http.MethodPost, "/abcompares",
			map[string]string{"name": "Name", "urlA": "urlA", "urlB": "urlB"}, nil)
		w := httptest.NewRecorder()
		h.Create(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var got models.AbCompare
		testutil.AssertJSON(t, w, &got)
		want := models.AbCompare{ID: "001", Name: "Name", URLA: "urlA", URLB: "urlB"}
		if got != want {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})

	t.Run("missing urlB is rejected before the controller", func(t *testing.T) {
		fake := &fakeCompares{}
		h := newCompareHandler(fake)

		req := testutil.MakeRequest(http.MethodPost, "/abcompares",
			map[string]string{"name": "Name", "urlA": "urlA"}, nil)
		w := httptest.NewRecorder()
		h.Create(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		if fake.createCalls != 0 {
			t.Errorf("Expected CreateNew not to be called, got %d calls", fake.createCalls)
		}

		var body models.ErrorResponse
		testutil.AssertJSON(t, w, &body)
		if body.Message != "compare: urlB is required" {
			t.Errorf("Expected message %q, got %q", "compare: urlB is required", body.Message)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		fake := &fakeCompares{}
		h := newCompareHandler(fake)

		req := httptest.NewRequest(http.MethodPost, "/abcompares", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		h.Create(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		if fake.createCalls != 0 {
			t.Errorf("Expected CreateNew not to be called, got %d calls", fake.createCalls)
		}
	})

	t.Run("controller failure is a server error", func(t *testing.T) {
		fake := &fakeCompares{err: errors.New("connection refused")}
		h := newCompareHandler(fake)

		req := testutil.MakeRequest(http.MethodPost, "/abcompares",
			map[string]string{"name": "Name", "urlA": "urlA", "urlB": "urlB"}, nil)
		w := httptest.NewRecorder()
		h.Create(w, req)

		testutil.AssertStatus(t, w, http.StatusInternalServerError)
	})
}

func TestCompareUpdate(t *testing.T) {
	t.Run("echoes the updated document", func(t *testing.T) {
		fake := &fakeCompares{}
		h := newCompareHandler(fake)

		req := testutil.MakeRequest(http.MethodPut, "/abcompares/001",
			map[string]string{"name": "Name", "urlA": "urlA", "urlB": "urlB"}, nil)
		req.SetPathValue("id", "001")
		w := httptest.NewRecorder()
		h.Update(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var got models.AbCompare
		testutil.AssertJSON(t, w, &got)
		if got.ID != "001" || got.URLB != "urlB" {
			t.Errorf("Unexpected response %+v", got)
		}
	})

	t.Run("missing urlB", func(t *testing.T) {
		fake := &fakeCompares{}
		h := newCompareHandler(fake)

		req := testutil.MakeRequest(http.MethodPut, "/abcompares/001",
			map[string]string{"name": "Name", "urlA": "urlA"}, nil)
		req.SetPathValue("id", "001")
		w := httptest.NewRecorder()
		h.Update(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		if fake.updateCalls != 0 {
			t.Errorf("Expected Update not to be called, got %d calls", fake.updateCalls)
		}
	})
}

func TestCompareDelete(t *testing.T) {
	tests := []struct {
		name     string
		removed  int64
		expected int
	}{
		{"deleted", 1, http.StatusOK},
		{"nothing matched", 0, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newCompareHandler(&fakeCompares{removed: tt.removed})

			req := httptest.NewRequest(http.MethodDelete, "/abcompares/001", nil)
			req.SetPathValue("id", "001")
			w := httptest.NewRecorder()
			h.Delete(w, req)

			testutil.AssertStatus(t, w, tt.expected)
			if tt.expected == http.StatusOK {
				var resp models.DeleteResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ID != "001" {
					t.Errorf("Expected _id 001, got %q", resp.ID)
				}
			}
		})
	}
}

func TestCompareGet(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		h := newCompareHandler(&fakeCompares{})

		req := httptest.NewRequest(http.MethodGet, "/abcompares/002", nil)
		req.SetPathValue("id", "002")
		w := httptest.NewRecorder()
		h.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("known id", func(t *testing.T) {
		doc := &models.AbCompare{ID: "001", Name: "Name", URLA: "urlA", URLB: "urlB"}
		h := newCompareHandler(&fakeCompares{findResult: doc})

		req := httptest.NewRequest(http.MethodGet, "/abcompares/001", nil)
		req.SetPathValue("id", "001")
		w := httptest.NewRecorder()
		h.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var got models.AbCompare
		testutil.AssertJSON(t, w, &got)
		if got != *doc {
			t.Errorf("Expected %+v, got %+v", *doc, got)
		}
	})
}

func TestCompareList(t *testing.T) {
	h := newCompareHandler(&fakeCompares{})

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/abcompares", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var got []models.AbCompare
	testutil.AssertJSON(t, w, &got)
	if len(got) != 1 {
		t.Errorf("Expected 1 compare, got %d", len(got))
	}
}

func TestQueryFlag(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"?includeResults=true", true},
		{"?includeResults=1", true},
		{"?includeResults=false", false},
		{"?includeResults=yes", false},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/reports/1"+tt.query, nil)
		if got := queryFlag(req, "includeResults"); got != tt.want {
			t.Errorf("queryFlag(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
