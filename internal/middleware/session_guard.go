package middleware

import (
	"context"
	"net/http"

	"hr-admin/internal/session"
	"hr-admin/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionIDKey adalah key gin context tempat guard menaruh session id;
// handler memakainya saat upstream menjawab 401 dan sesi harus diakhiri.
const SessionIDKey = "session_id"

// TokenLoader adalah potongan session.Store yang dibutuhkan guard.
type TokenLoader interface {
	Token(ctx context.Context, sessionID string) (string, error)
}

// RequireSession memastikan request punya sesi dengan bearer token.
// Token dimasukkan ke context untuk dipakai upstream client; tanpa sesi
// user diarahkan ke halaman login.
func RequireSession(tokens TokenLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(session.CookieName)
		if err != nil || sid == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		token, err := tokens.Token(c.Request.Context(), sid)
		if err != nil {
			zap.L().Named("middleware").Error("load session token failed", zap.Error(err))
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if token == "" {
			// sesi sudah expired di Redis, bersihkan cookie yang tersisa
			c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(SessionIDKey, sid)
		ctx := contextutil.WithToken(c.Request.Context(), token)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
