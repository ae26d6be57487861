package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-studio/internal/server"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config)
}

func doJSON(t *testing.T, srv *server.Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestGetInvoice_Defaults(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodGet, "/api/v1/invoice", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response server.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "INV-0001", response.Invoice.Details.Number)
	assert.Equal(t, "USD", response.Invoice.Details.Currency)
	assert.Equal(t, "blue-600", response.Design.AccentColor)
	assert.True(t, response.Totals.Total.IsZero())
}

func TestUpdateSenderEndpoint(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPut, "/api/v1/invoice/sender",
		server.FieldUpdateRequest{Field: "name", Value: "Acme Studio"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/invoice", nil)
	var response server.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Acme Studio", response.Invoice.Sender.Name)
}

func TestUpdateSenderEndpoint_UnknownField(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPut, "/api/v1/invoice/sender",
		server.FieldUpdateRequest{Field: "taxId", Value: "123"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateDetailsEndpoint_InvalidTaxRate(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPut, "/api/v1/invoice/details",
		server.FieldUpdateRequest{Field: "taxRate", Value: "lots"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// State unchanged
	w = doJSON(t, srv, http.MethodGet, "/api/v1/invoice", nil)
	var response server.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "0.1", response.Invoice.Details.TaxRate.String())
}

func TestLineItemLifecycle(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPost, "/api/v1/invoice/items", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var created server.ItemCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = doJSON(t, srv, http.MethodPut, "/api/v1/invoice/items/"+created.ID,
		server.FieldUpdateRequest{Field: "quantity", Value: "10"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, srv, http.MethodPut, "/api/v1/invoice/items/"+created.ID,
		server.FieldUpdateRequest{Field: "rate", Value: "50"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/invoice", nil)
	var response server.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "500", response.Totals.Subtotal.String())
	assert.Equal(t, "550", response.Totals.Total.String())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/invoice/items/"+created.ID, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateItem_NotFound(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPut, "/api/v1/invoice/items/missing",
		server.FieldUpdateRequest{Field: "quantity", Value: "1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveItem_NotFound(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/invoice/items/missing", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFooterEndpoint(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPut, "/api/v1/invoice/footer",
		server.FooterRequest{Text: "Thank you!"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/invoice", nil)
	var response server.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Thank you!", response.Invoice.Footer)
}

func TestDesignEndpoint(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPut, "/api/v1/design",
		server.DesignUpdateRequest{Key: "template", Value: "bold"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown template values are accepted; rendering falls back
	w = doJSON(t, srv, http.MethodPut, "/api/v1/design",
		server.DesignUpdateRequest{Key: "template", Value: "brutalist"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Unknown keys are not
	w = doJSON(t, srv, http.MethodPut, "/api/v1/design",
		server.DesignUpdateRequest{Key: "margin", Value: "10"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFontsEndpoint(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodGet, "/api/v1/fonts", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response server.FontsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Serif)
	assert.NotEmpty(t, response.Sans)
	assert.NotEmpty(t, response.Mono)
}

func TestRenderEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/render", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer()

	w := doJSON(t, srv, http.MethodPost, "/api/v1/export",
		server.ExportRequest{Title: "August Invoice"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "August Invoice.pdf")
}

func TestResetEndpoint(t *testing.T) {
	srv := newTestServer()

	doJSON(t, srv, http.MethodPut, "/api/v1/invoice/sender",
		server.FieldUpdateRequest{Field: "name", Value: "Acme"})
	doJSON(t, srv, http.MethodPost, "/api/v1/invoice/items", nil)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/invoice/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/invoice", nil)
	var response server.InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Invoice.Sender.Name)
	assert.Empty(t, response.Invoice.LineItems)
}
