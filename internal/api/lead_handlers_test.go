package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplanner/launchplanner-server/internal/domain"
)

func TestCreateLead(t *testing.T) {
	ts := setupTestServer(t, Options{})
	p := ts.createProduct(t, "Widget")

	lead := ts.createLead(t, p.ID, "ada@example.com")
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, p.ID, lead.ProductID)
	assert.False(t, lead.CreatedAt.IsZero())

	t.Run("invalid email", func(t *testing.T) {
		resp := ts.api.Post("/api/leads", map[string]any{"productId": p.ID, "email": "nope"})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, decode[errorBody](t, resp).Error, "email")
	})

	t.Run("missing email", func(t *testing.T) {
		resp := ts.api.Post("/api/leads", map[string]any{"productId": p.ID})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestListLeads_JSON(t *testing.T) {
	ts := setupTestServer(t, Options{})
	p := ts.createProduct(t, "Widget")
	ts.createLead(t, p.ID, "a@x.com")

	resp := ts.api.Get("/api/leads")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "application/json")
	leads := decode[[]domain.Lead](t, resp)
	assert.Len(t, leads, 1)
}

func TestListLeads_CSVFilteredByProduct(t *testing.T) {
	ts := setupTestServer(t, Options{})
	p1 := ts.createProduct(t, "One")
	p2 := ts.createProduct(t, "Two")

	first := ts.createLead(t, p1.ID, "a@x.com")
	ts.createLead(t, p2.ID, "b@x.com")
	second := ts.createLead(t, p1.ID, "c@x.com")

	resp := ts.do(t, http.MethodGet, "/api/leads?productId="+p1.ID+"&format=csv")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv", resp.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=leads.csv", resp.Header().Get("Content-Disposition"))

	lines := strings.Split(resp.Body.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Product ID,Email,Name,Source,Created At", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], first.ID+","+p1.ID+",a@x.com,Ada,web,"))
	assert.True(t, strings.HasPrefix(lines[2], second.ID+","+p1.ID+",c@x.com,Ada,web,"))
	assert.NotContains(t, resp.Body.String(), "b@x.com")
}

func TestListLeads_CSVEmpty(t *testing.T) {
	ts := setupTestServer(t, Options{})

	resp := ts.do(t, http.MethodGet, "/api/leads?format=csv")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ID,Product ID,Email,Name,Source,Created At", resp.Body.String())
}

func TestListLeads_OtherFormatsReturnJSON(t *testing.T) {
	ts := setupTestServer(t, Options{})
	p := ts.createProduct(t, "Widget")
	ts.createLead(t, p.ID, "a@x.com")

	for _, format := range []string{"xml", "CSV", "json"} {
		t.Run(format, func(t *testing.T) {
			resp := ts.do(t, http.MethodGet, "/api/leads?format="+format)

			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Header().Get("Content-Type"), "application/json")
			assert.Len(t, decode[[]domain.Lead](t, resp), 1)
		})
	}
}

func TestDeleteLead(t *testing.T) {
	ts := setupTestServer(t, Options{})
	p := ts.createProduct(t, "Widget")
	lead := ts.createLead(t, p.ID, "a@x.com")

	assert.Equal(t, http.StatusBadRequest, ts.api.Delete("/api/leads?id=").Code)
	assert.Equal(t, http.StatusNotFound, ts.api.Delete("/api/leads?id=unknown-id").Code)

	resp := ts.api.Delete("/api/leads?id=" + lead.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":true}`, resp.Body.String())

	leads := ts.api.Get("/api/leads")
	assert.JSONEq(t, `[]`, leads.Body.String())
}
