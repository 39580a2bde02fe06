package session

import (
	"net/http"
	"strings"
	"time"

	"hr-admin/internal/bootstrap"
	"hr-admin/internal/shared/webview"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// cookieMaxAge sedikit lebih panjang dari TTL Redis; Redis yang jadi otoritas.
const cookieMaxAge = 24 * 60 * 60

type Handler struct {
	store  *Store
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

func NewHandler(store *Store, audit bootstrap.AuditLogger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("session.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.handler")
	}
	return &Handler{store: store, audit: audit, logger: l}
}

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flash": webview.TakeFlash(c),
	})
}

// Login menerima access token yang sudah diterbitkan backend HR.
// Console tidak memegang signing key, jadi klaim hanya dibaca tanpa
// verifikasi; token expired ditolak di sini supaya tidak jadi 401 di
// request pertama.
func (h *Handler) Login(c *gin.Context) {
	token := strings.TrimSpace(c.PostForm("token"))
	if token == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Access token is required",
		})
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		h.logger.Warn("login with malformed token", zap.Error(err))
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "That does not look like a valid access token",
		})
		return
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Access token is expired",
		})
		return
	}

	sid := uuid.New().String()
	if err := h.store.Save(c.Request.Context(), sid, token); err != nil {
		h.logger.Error("save session failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Could not start a session. Please try again.",
		})
		return
	}

	c.SetCookie(CookieName, sid, cookieMaxAge, "/", "", false, true)

	subject, _ := claims.GetSubject()
	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "ADMIN_LOGIN",
		Message: "Admin session started",
		Meta: map[string]any{
			"subject":    subject,
			"session_id": sid,
		},
	})

	c.Redirect(http.StatusSeeOther, "/departments")
}

func (h *Handler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(CookieName); err == nil && sid != "" {
		if err := h.store.Clear(c.Request.Context(), sid); err != nil {
			h.logger.Warn("clear session failed", zap.Error(err))
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
