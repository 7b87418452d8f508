package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestUpsertProfileValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed body", `{`},
		{"missing email", `{"full_name":"Aidah Rahim"}`},
		{"unknown role", `{"email":"aidah@example.my","role":"owner"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/api/admin/profiles/u-1", strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": "u-1"})
			rec := httptest.NewRecorder()
			UpsertProfile(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateProfileRoleRejectsUnknownRole(t *testing.T) {
	req := httptest.NewRequest("PUT", "/api/admin/profiles/u-1/role", strings.NewReader(`{"role":"owner"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "u-1"})
	rec := httptest.NewRecorder()
	UpdateProfileRole(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
