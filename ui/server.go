// Package ui is the HTTP layer: page routes, form routes and the JSON
// API, backed by signed cookie sessions.
package ui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shetkarai/app"
	"shetkarai/domain/lang"
	"shetkarai/internal/config"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

const sessionCookieName = "shetkarai_session"

// Server is the web server for the ShetkarAI UI and API.
type Server struct {
	router      *gin.Engine
	cfg         *config.Config
	auth        *app.AuthService
	diagnosis   *app.DiagnosisService
	soil        *app.SoilService
	weather     *app.WeatherService
	defaultLang lang.Language
	logger      *zap.Logger
}

// NewServer wires the services into a configured Gin engine.
func NewServer(
	cfg *config.Config,
	auth *app.AuthService,
	diagnosis *app.DiagnosisService,
	soil *app.SoilService,
	weather *app.WeatherService,
	logger *zap.Logger,
) (*Server, error) {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Debug {
		router.Use(gin.Logger())
	}

	store := cookie.NewStore([]byte(cfg.Session.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   30 * 24 * 60 * 60,
	})
	router.Use(sessions.Sessions(sessionCookieName, store))
	router.Use(SessionMiddleware(logger))

	tmpl, err := template.ParseFS(embeddedTemplates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		router:      router,
		cfg:         cfg,
		auth:        auth,
		diagnosis:   diagnosis,
		soil:        soil,
		weather:     weather,
		defaultLang: lang.Normalize(cfg.Language.Default),
		logger:      logger,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	r := s.router

	// Pages and form posts
	r.GET("/", s.handleIndex)
	r.GET("/language", s.handleLanguageSelect)
	r.POST("/set-language", s.handleSetLanguage)
	r.GET("/login", s.handleLoginPage)
	r.POST("/login", s.handleLogin)
	r.POST("/register", s.handleRegister)
	r.GET("/dashboard", s.requirePageAuth, s.handleDashboard)
	r.POST("/change-language", s.handleChangeLanguage)
	r.POST("/logout", s.handleLogout)

	// Feature pages, auth-gated placeholders for now
	r.GET("/detect-disease", s.requirePageAuth, placeholderPage("Disease Detection Page (To be implemented)"))
	r.GET("/analyze-soil", s.requirePageAuth, placeholderPage("Soil Analysis Page (To be implemented)"))
	r.GET("/weather", s.requirePageAuth, placeholderPage("Weather Page (To be implemented)"))

	// JSON API
	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/detect-disease", s.handleDetectDisease)
	api.POST("/analyze-soil", s.handleAnalyzeSoil)
	api.GET("/weather", s.handleWeather)
}

// requirePageAuth redirects unauthenticated page requests to the login
// page.
func (s *Server) requirePageAuth(c *gin.Context) {
	if !CurrentSession(c).LoggedIn() {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

func placeholderPage(text string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, text)
	}
}

// sessionLang resolves the effective language for a request.
func (s *Server) sessionLang(c *gin.Context) lang.Language {
	return CurrentSession(c).Lang(s.defaultLang)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server on the configured port.
func (s *Server) Start() error {
	s.logger.Info("starting ShetkarAI server", zap.String("port", s.cfg.Server.Port))
	return s.router.Run(":" + s.cfg.Server.Port)
}
