package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagpresto/internal/adapter/memory"
	"bagpresto/internal/adapter/storage"
	"bagpresto/internal/adapter/usecase"
	"bagpresto/internal/config/configs"
	"bagpresto/internal/fixtures"
)

const testAPIKey = "public-key"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	require.NoError(t, store.Load(fixtures.Demo(time.Now())))

	logoDir := t.TempDir()
	logos, err := storage.NewLogoStorage(configs.Storage{LogoDir: logoDir, BasePath: "/logos"})
	require.NoError(t, err)

	auth := usecase.NewAuthService(store, memory.NewSessionStore(),
		configs.Auth{Secret: "s3cret", Issuer: "bagpresto", TokenTTL: time.Hour}, logger)
	require.NoError(t, auth.EnsureAdmin(t.Context(), "prof@demo.com", "12345678"))

	h := NewHandler(Services{
		Campaigns:    usecase.NewCampaignUseCase(store, store, store, logos, logger),
		Admin:        usecase.NewAdminUseCase(store, store, store, logger),
		Partners:     usecase.NewPartnerUseCase(store, store),
		Registration: usecase.NewRegistrationUseCase(auth, store, store, store, logger),
		Statistics:   usecase.NewStatisticsUseCase(store),
		Auth:         auth,
		Store:        store,
	}, Options{
		APIKey:         testAPIKey,
		RequestTimeout: 5 * time.Second,
		MaxUploadBytes: 4 << 20,
		LogoDir:        logoDir,
		LogoBasePath:   "/logos",
	}, logger)
	return h.Router()
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("apikey", testAPIKey)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func signIn(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/auth/signin", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out.AccessToken
}

type errorResponse struct {
	Error struct {
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var out errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestAPIKeyRequired(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/statistics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_bags_distributed":125000`)
}

func TestPriceQuote(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/quotes/price", "", map[string]any{
		"bag_quantity":    2000,
		"use_custom_logo": true,
		"placement":       map[string]any{"both_faces": true, "exclusive_sector": true},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Total    string `json:"total"`
		Complete bool   `json:"complete"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "260", out.Total)
	assert.False(t, out.Complete)
}

func TestJSONBodyLimits(t *testing.T) {
	h := newTestHandler(t)
	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes/price", strings.NewReader(body))
		req.Header.Set("apikey", testAPIKey)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := post(`{"bag_quantity":2000}` + "\n")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = post(`{"bag_quantity":2000}` + strings.Repeat(" ", maxJSONBody))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Requête trop volumineuse", decodeError(t, rec).Error.Message)

	rec = post(`{"bag_quantity":2000} {"garbage":true} not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(`{"bag_quantity":2000} 3`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateStep(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/quotes/steps/zone", "", map[string]any{"postal_code": "75001"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
	assert.Contains(t, rec.Body.String(), "Normandie")

	rec = do(t, h, http.MethodPost, "/api/v1/quotes/steps/shipping", "", map[string]any{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNearbyPartners(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/v1/partners/nearby?postal_code=14000", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var partners []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &partners))
	assert.Len(t, partners, 2)

	rec = do(t, h, http.MethodGet, "/api/v1/partners/nearby?postal_code=75008", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Le code postal doit être en Normandie (14, 27, 50, 61, 76)", decodeError(t, rec).Error.Message)
}

func TestSubmitCampaignAndDashboard(t *testing.T) {
	h := newTestHandler(t)
	token := signIn(t, h, "client@demo.com", fixtures.DemoPassword)

	rec := do(t, h, http.MethodPost, "/api/v1/client/campaigns", token, map[string]any{
		"postal_code":       "14000",
		"selected_partners": []string{fixtures.PartnerIDs[0].String(), fixtures.PartnerIDs[1].String()},
		"bag_quantity":      4000,
		"company_name":      "Garage Normand",
		"sector":            "Automobile",
		"payment_method":    "card",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	assert.Contains(t, rec.Body.String(), `"budget":"320"`)

	rec = do(t, h, http.MethodGet, "/api/v1/client/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash struct {
		Campaigns []map[string]any `json:"campaigns"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Len(t, dash.Campaigns, 3)
}

func TestRoleGuards(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/v1/client/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	partner := signIn(t, h, "boulangerie@demo.com", fixtures.DemoPassword)
	rec = do(t, h, http.MethodGet, "/api/v1/client/dashboard", partner, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/partner/dashboard", partner, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminCampaignStatus(t *testing.T) {
	h := newTestHandler(t)
	admin := signIn(t, h, "prof@demo.com", "12345678")
	path := "/api/v1/admin/campaigns/" + fixtures.CampaignIDs[1].String() + "/status"

	rec := do(t, h, http.MethodPatch, path, admin, map[string]any{"status": "approved", "version": 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"version":2`)

	rec = do(t, h, http.MethodPatch, path, admin, map[string]any{"status": "printing", "version": 1})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPatch, path, admin, map[string]any{"status": "pending", "version": 2})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPatch, path, admin, map[string]any{"status": "pending", "version": 2, "force": true})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/admin/overview", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAccountStatus(t *testing.T) {
	h := newTestHandler(t)
	admin := signIn(t, h, "prof@demo.com", "12345678")

	rec := do(t, h, http.MethodPatch, "/api/v1/admin/partners/"+fixtures.PartnerIDs[2].String()+"/status", admin,
		map[string]any{"status": "active"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/v1/admin/clients/not-a-uuid/status", admin, map[string]any{"status": "active"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/v1/admin/clients/"+fixtures.ClientID.String()+"/status", admin,
		map[string]any{"status": "banned"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Details, "status")
}

func TestSignOutRevokesToken(t *testing.T) {
	h := newTestHandler(t)
	token := signIn(t, h, "client@demo.com", fixtures.DemoPassword)

	rec := do(t, h, http.MethodGet, "/api/v1/auth/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "client@demo.com")
	assert.NotContains(t, rec.Body.String(), "password")

	rec = do(t, h, http.MethodPost, "/api/v1/auth/signout", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterClient(t *testing.T) {
	h := newTestHandler(t)
	form := map[string]any{
		"email":        "nouveau@client.fr",
		"password":     "secret1",
		"full_name":    "Nina",
		"company_name": "Fleurs & Co",
		"sector":       "Fleuriste",
		"postal_code":  "75008",
	}

	rec := do(t, h, http.MethodPost, "/api/v1/register/client", "", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	form["postal_code"] = "50100"
	rec = do(t, h, http.MethodPost, "/api/v1/register/client", "", form)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/v1/register/client", "", form)
	assert.Equal(t, http.StatusConflict, rec.Code)

	delete(form, "email")
	rec = do(t, h, http.MethodPost, "/api/v1/register/client", "", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Champ requis", decodeError(t, rec).Error.Details["email"])
}

func TestAccountsOnlyThroughRegistration(t *testing.T) {
	h := newTestHandler(t)
	creds := map[string]any{
		"email":     "paris@example.com",
		"password":  "secret1",
		"full_name": "Paul",
		"user_type": "client",
	}

	rec := do(t, h, http.MethodPost, "/api/v1/auth/signup", "", creds)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/register/client", "", map[string]any{
		"email":        "paris@example.com",
		"password":     "secret1",
		"full_name":    "Paul",
		"company_name": "Paris Motors",
		"sector":       "Automobile",
		"postal_code":  "75001",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/auth/signin", "", map[string]string{
		"email":    "paris@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUploadLogo(t *testing.T) {
	h := newTestHandler(t)
	token := signIn(t, h, "client@demo.com", fixtures.DemoPassword)
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

	upload := func(contentType string, data []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="logo"; filename="logo.png"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/client/logos", &body)
		req.Header.Set("apikey", testAPIKey)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := upload("image/png", png)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out struct {
		LogoURL string `json:"logo_url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	served := httptest.NewRecorder()
	h.ServeHTTP(served, httptest.NewRequest(http.MethodGet, out.LogoURL, nil))
	assert.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, png, served.Body.Bytes())
	assert.Equal(t, "nosniff", served.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, served.Header().Get("Content-Security-Policy"), "default-src 'none'")

	rec = upload("application/pdf", []byte("%PDF-1.4"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Veuillez sélectionner une image", decodeError(t, rec).Error.Message)

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	rec = upload("image/svg+xml", svg)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
