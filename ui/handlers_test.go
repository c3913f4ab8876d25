package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shetkarai/adapters/inference"
	"shetkarai/app"
	"shetkarai/domain/lang"
	"shetkarai/internal/config"
	"shetkarai/internal/errors"
	"shetkarai/internal/i18n"
	"shetkarai/internal/upload"
	"shetkarai/models"
)

type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) Register(ctx context.Context, email, password, username string, l lang.Language) (*models.Principal, error) {
	args := m.Called(ctx, email, password, username, l)
	principal, _ := args.Get(0).(*models.Principal)
	return principal, args.Error(1)
}

func (m *MockIdentity) Login(ctx context.Context, email, password string) (*models.Principal, error) {
	args := m.Called(ctx, email, password)
	principal, _ := args.Get(0).(*models.Principal)
	return principal, args.Error(1)
}

func (m *MockIdentity) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Error(1)
}

func (m *MockIdentity) SetLanguage(ctx context.Context, userID string, l lang.Language) error {
	args := m.Called(ctx, userID, l)
	return args.Error(0)
}

type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) Current(ctx context.Context, lat, lon string) (*models.WeatherSnapshot, error) {
	args := m.Called(ctx, lat, lon)
	snapshot, _ := args.Get(0).(*models.WeatherSnapshot)
	return snapshot, args.Error(1)
}

func newTestServer(t *testing.T) (*Server, *MockIdentity, *MockWeatherProvider) {
	t.Helper()

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: "0"},
		Session: config.SessionConfig{SecretKey: "test-secret"},
		Upload: config.UploadConfig{
			Dir:               t.TempDir(),
			AllowedExtensions: []string{"png", "jpg", "jpeg", "gif"},
		},
		Language: config.LanguageConfig{Default: "en"},
	}

	identity := new(MockIdentity)
	provider := new(MockWeatherProvider)
	uploads := upload.NewSaver(cfg.Upload.Dir, cfg.Upload.AllowedExtensions)
	logger := zap.NewNop()

	server, err := NewServer(
		cfg,
		app.NewAuthService(identity, logger),
		app.NewDiagnosisService(uploads, inference.NewDiseaseDetector(rand.New(rand.NewSource(1)))),
		app.NewSoilService(uploads, inference.NewSoilAnalyzer(rand.New(rand.NewSource(1)))),
		app.NewWeatherService(provider),
		logger,
	)
	require.NoError(t, err)
	return server, identity, provider
}

// browser replays cookies across requests the way a real client would.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, s *Server) *browser {
	return &browser{t: t, handler: s.Handler(), cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest("GET", target, nil))
}

func (b *browser) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) postMultipart(target, field, filename string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(b.t, err)
	_, err = part.Write(content)
	require.NoError(b.t, err)
	require.NoError(b.t, writer.Close())

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return b.do(req)
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	server, _, _ := newTestServer(t)
	w := newBrowser(t, server).get("/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "ok", body["status"])
}

func TestIndex_RedirectChain(t *testing.T) {
	server, _, _ := newTestServer(t)
	b := newBrowser(t, server)

	// Fresh visitor: language selection first
	w := b.get("/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/language", w.Header().Get("Location"))

	// Language picked: login next
	b.postForm("/set-language", url.Values{"language": {"hi"}})
	w = b.get("/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboard_RequiresAuth(t *testing.T) {
	server, _, _ := newTestServer(t)
	for _, page := range []string{"/dashboard", "/detect-disease", "/analyze-soil", "/weather"} {
		w := newBrowser(t, server).get(page)
		assert.Equal(t, http.StatusFound, w.Code, "page %s", page)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	}
}

func TestLogin_SuccessRestoresLanguage(t *testing.T) {
	server, identity, _ := newTestServer(t)
	identity.On("Login", mock.Anything, "ram@example.com", "secret").
		Return(&models.Principal{ID: "u1", Email: "ram@example.com"}, nil)
	identity.On("Profile", mock.Anything, "u1").
		Return(&models.Profile{ID: "u1", Username: "ram", LanguagePreference: "hi"}, nil)

	b := newBrowser(t, server)
	w := b.postForm("/login", url.Values{"email": {"ram@example.com"}, "password": {"secret"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = b.get("/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ram")
	// Hindi preference restored from the profile
	assert.Contains(t, w.Body.String(), i18n.Text("welcome", lang.Hindi))
}

func TestLogin_BadCredentialsShowsOneShotError(t *testing.T) {
	server, identity, _ := newTestServer(t)
	identity.On("Login", mock.Anything, "ram@example.com", "wrong").
		Return(nil, errors.Unauthorized("invalid login credentials"))

	b := newBrowser(t, server)
	w := b.postForm("/login", url.Values{"email": {"ram@example.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = b.get("/login")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), i18n.Text("error_login", lang.English))
	// The render that popped the error must rewrite the cookie before
	// the body flushes the headers, or the error would stick forever.
	assert.NotEmpty(t, w.Result().Cookies())

	// Transient error is popped on render
	w = b.get("/login")
	assert.NotContains(t, w.Body.String(), i18n.Text("error_login", lang.English))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	server, identity, _ := newTestServer(t)
	identity.On("Register", mock.Anything, "dup@example.com", "secret", "dup", lang.English).
		Return(nil, errors.Conflict("email already registered"))

	b := newBrowser(t, server)
	w := b.postForm("/register", url.Values{
		"email": {"dup@example.com"}, "password": {"secret"}, "username": {"dup"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	w = b.get("/login")
	assert.Contains(t, w.Body.String(), i18n.Text("error_email_exists", lang.English))
}

func TestRegister_BackendFailureShowsGenericError(t *testing.T) {
	server, identity, _ := newTestServer(t)
	identity.On("Register", mock.Anything, "down@example.com", "secret", "down", lang.English).
		Return(nil, errors.ExternalServiceError("identity", nil))

	b := newBrowser(t, server)
	w := b.postForm("/register", url.Values{
		"email": {"down@example.com"}, "password": {"secret"}, "username": {"down"},
	})
	assert.Equal(t, http.StatusFound, w.Code)

	// The backend error text stays out of the page; the user sees the
	// translated generic message, once.
	w = b.get("/login")
	assert.Contains(t, w.Body.String(), i18n.Text("error_register", lang.English))
	assert.NotContains(t, w.Body.String(), "identity service error")

	w = b.get("/login")
	assert.NotContains(t, w.Body.String(), i18n.Text("error_register", lang.English))
}

func TestRegister_SuccessLogsIn(t *testing.T) {
	server, identity, _ := newTestServer(t)
	identity.On("Register", mock.Anything, "new@example.com", "secret", "newuser", lang.Hindi).
		Return(&models.Principal{ID: "u9", Email: "new@example.com"}, nil)

	b := newBrowser(t, server)
	b.postForm("/set-language", url.Values{"language": {"hi"}})
	w := b.postForm("/register", url.Values{
		"email": {"new@example.com"}, "password": {"secret"}, "username": {"newuser"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	w = b.get("/dashboard")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "newuser")
}

func TestLogout_PreservesLanguage(t *testing.T) {
	server, identity, _ := newTestServer(t)
	identity.On("Login", mock.Anything, "ram@example.com", "secret").
		Return(&models.Principal{ID: "u1", Email: "ram@example.com"}, nil)
	identity.On("Profile", mock.Anything, "u1").Return(nil, nil)
	identity.On("SetLanguage", mock.Anything, "u1", lang.Hindi).Return(nil)

	b := newBrowser(t, server)
	b.postForm("/set-language", url.Values{"language": {"hi"}})
	b.postForm("/login", url.Values{"email": {"ram@example.com"}, "password": {"secret"}})
	b.postForm("/change-language", url.Values{"language": {"hi"}})

	w := b.postForm("/logout", url.Values{})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// Logged out but the language choice survives: index goes to login,
	// not back to language selection, and the login page renders Hindi.
	w = b.get("/")
	assert.Equal(t, "/login", w.Header().Get("Location"))
	w = b.get("/login")
	assert.Contains(t, w.Body.String(), i18n.Text("login_title", lang.Hindi))

	// And the dashboard is gated again
	w = b.get("/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestDetectDisease_NoImage(t *testing.T) {
	server, _, _ := newTestServer(t)
	w := newBrowser(t, server).postForm("/api/detect-disease", url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No image provided", decodeJSON(t, w)["error"])
}

func TestDetectDisease_InvalidExtension(t *testing.T) {
	server, _, _ := newTestServer(t)
	w := newBrowser(t, server).postMultipart("/api/detect-disease", "image", "a.exe", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid file format", decodeJSON(t, w)["error"])
}

func TestDetectDisease_Success(t *testing.T) {
	server, _, _ := newTestServer(t)
	w := newBrowser(t, server).postMultipart("/api/detect-disease", "image", "leaf.png", []byte("pixels"))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.NotEmpty(t, body["disease"])
	confidence, ok := body["confidence"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, confidence, 0.70)
	assert.Less(t, confidence, 0.99)
	recommendations, ok := body["recommendations"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, recommendations)
}

func TestAnalyzeSoil_Success(t *testing.T) {
	server, _, _ := newTestServer(t)
	w := newBrowser(t, server).postMultipart("/api/analyze-soil", "image", "soil.jpg", []byte("pixels"))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	assert.NotEmpty(t, body["soil_type"])
	properties, ok := body["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "ph")
	assert.Contains(t, properties, "organic_matter")
	recommendations, ok := body["recommendations"].([]any)
	require.True(t, ok)
	assert.Len(t, recommendations, 4)
}

func TestWeather_MissingCoordinates(t *testing.T) {
	server, _, _ := newTestServer(t)
	b := newBrowser(t, server)

	for _, target := range []string{"/api/weather", "/api/weather?lat=10", "/api/weather?lon=10"} {
		w := b.get(target)
		assert.Equal(t, http.StatusBadRequest, w.Code, "target %s", target)
		assert.Equal(t, "Latitude and longitude parameters are required", decodeJSON(t, w)["error"])
	}
}

func TestWeather_Success(t *testing.T) {
	server, _, provider := newTestServer(t)
	provider.On("Current", mock.Anything, "18.52", "73.85").
		Return(&models.WeatherSnapshot{Temperature: 40, Humidity: 85, Condition: "Rain", City: "Pune"}, nil)

	w := newBrowser(t, server).get("/api/weather?lat=18.52&lon=73.85&language=hi")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeJSON(t, w)
	weather, ok := body["weather"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 40.0, weather["temperature"])

	recommendations, ok := body["recommendations"].([]any)
	require.True(t, ok)
	require.Len(t, recommendations, 3)
	assert.Equal(t, "उच्च तापमान चेतावनी: फसलों के लिए पर्याप्त पानी सुनिश्चित करें।", recommendations[0])
}

func TestWeather_UpstreamFailure(t *testing.T) {
	server, _, provider := newTestServer(t)
	provider.On("Current", mock.Anything, "0", "0").Return(nil, nil)

	w := newBrowser(t, server).get("/api/weather?lat=0&lon=0")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch weather data", decodeJSON(t, w)["error"])
}
