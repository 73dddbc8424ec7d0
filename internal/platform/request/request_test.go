// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestutil "github.com/taibuivan/folio/internal/platform/request"
	"github.com/taibuivan/folio/internal/platform/validate"
)

func TestDecodeJSON(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"folio"}`))
	require.NoError(t, requestutil.DecodeJSON(request, &target))
	assert.Equal(t, "folio", target.Name)

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.ErrorIs(t, requestutil.DecodeJSON(request, &target), validate.ErrInvalidJSON)

	oversized := `{"name":"` + strings.Repeat("a", requestutil.MaxBodyBytes) + `"}`
	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(oversized))
	assert.ErrorIs(t, requestutil.DecodeJSON(request, &target), validate.ErrInvalidJSON)
}

func TestID_And_Query(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items/{slug}", func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "folio", requestutil.ID(request, "slug"))
		assert.Equal(t, "web", requestutil.Query(request, "category"))
		assert.Empty(t, requestutil.Query(request, "missing"))
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/folio?category=%20web%20", nil))
}

func TestIsJSONArray(t *testing.T) {
	tests := []struct {
		name        string
		raw         json.RawMessage
		wantPresent bool
		wantArray   bool
	}{
		{"absent", nil, false, false},
		{"array", json.RawMessage(` ["go"]`), true, true},
		{"null", json.RawMessage(`null`), true, false},
		{"string", json.RawMessage(`"go"`), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			present, isArray := requestutil.IsJSONArray(tt.raw)
			assert.Equal(t, tt.wantPresent, present)
			assert.Equal(t, tt.wantArray, isArray)
		})
	}
}
