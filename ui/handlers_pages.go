package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shetkarai/domain/lang"
	"shetkarai/internal/errors"
	"shetkarai/internal/i18n"
)

// handleIndex routes the visitor by session state: logged in users to
// the dashboard, language-picked visitors to login, everyone else to
// language selection.
func (s *Server) handleIndex(c *gin.Context) {
	sess := CurrentSession(c)
	switch {
	case sess.LoggedIn():
		c.Redirect(http.StatusFound, "/dashboard")
	case sess.Language != "":
		c.Redirect(http.StatusFound, "/login")
	default:
		c.Redirect(http.StatusFound, "/language")
	}
}

// handleLanguageSelect renders the language picker, always in English.
func (s *Server) handleLanguageSelect(c *gin.Context) {
	c.HTML(http.StatusOK, "language_select.html", gin.H{
		"translations": translationsFor(lang.English,
			"language_select_title", "language_select_subtitle",
			"english", "hindi", "continue"),
	})
}

func (s *Server) handleSetLanguage(c *gin.Context) {
	s.applyLanguageChange(c)
	c.Redirect(http.StatusFound, "/login")
}

func (s *Server) handleChangeLanguage(c *gin.Context) {
	s.applyLanguageChange(c)
	c.Redirect(http.StatusFound, "/dashboard")
}

// applyLanguageChange stores the chosen language in the session and,
// for logged-in users, persists it to the profile.
func (s *Server) applyLanguageChange(c *gin.Context) {
	sess := CurrentSession(c)
	code := c.DefaultPostForm("language", lang.English.String())
	sess.SetLanguage(code)

	if sess.LoggedIn() {
		s.auth.SetLanguage(c.Request.Context(), sess.UserID, lang.Normalize(code))
	}
}

func (s *Server) handleLoginPage(c *gin.Context) {
	sess := CurrentSession(c)
	l := s.sessionLang(c)

	loginError := sess.PopError()
	registerError := sess.PopRegisterError()
	// Rendering flushes the headers, so the cleared errors must reach
	// the cookie first.
	sess.Save()

	c.HTML(http.StatusOK, "login.html", gin.H{
		"language": l.String(),
		"translations": translationsFor(l,
			"login_title", "register_title", "email", "password", "username",
			"login_button", "register_button", "no_account", "have_account",
			"register_link", "login_link", "language_select_title"),
		"error":          loginError,
		"register_error": registerError,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	sess := CurrentSession(c)
	l := s.sessionLang(c)
	email := c.PostForm("email")
	password := c.PostForm("password")

	result, err := s.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.GetCode(err) == errors.CodeUnauthorized {
			sess.SetError(i18n.Text("error_login", l))
		} else {
			sess.SetError(err.Error())
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess.SetPrincipal(result.UserID, result.Username)
	if result.Language != "" {
		sess.SetLanguage(result.Language)
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (s *Server) handleRegister(c *gin.Context) {
	sess := CurrentSession(c)
	l := s.sessionLang(c)
	email := c.PostForm("email")
	password := c.PostForm("password")
	username := c.PostForm("username")

	result, err := s.auth.Register(c.Request.Context(), email, password, username, l)
	if err != nil {
		if errors.GetCode(err) == errors.CodeConflict {
			sess.SetRegisterError(i18n.Text("error_email_exists", l))
		} else {
			sess.SetRegisterError(i18n.Text("error_register", l))
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess.SetPrincipal(result.UserID, result.Username)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (s *Server) handleDashboard(c *gin.Context) {
	sess := CurrentSession(c)
	l := s.sessionLang(c)

	username := sess.Username
	if username == "" {
		username = "User"
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"language": l.String(),
		"username": username,
		"translations": translationsFor(l,
			"app_title", "welcome", "detect_disease", "detect_disease_desc",
			"analyze_soil", "analyze_soil_desc", "weather", "weather_desc",
			"logout", "english", "hindi"),
	})
}

func (s *Server) handleLogout(c *gin.Context) {
	CurrentSession(c).Logout()
	c.Redirect(http.StatusFound, "/login")
}

func translationsFor(l lang.Language, keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[key] = i18n.Text(key, l)
	}
	return out
}
