package session_test

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hr-admin/internal/bootstrap"
	"hr-admin/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAudit struct {
	logs []bootstrap.AuditLog
}

func (f *fakeAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	f.logs = append(f.logs, entry)
}

func newLoginRouter(t *testing.T, rdb *redis.Client) (*gin.Engine, *fakeAudit) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	r.LoadHTMLGlob("../../web/templates/*.html")

	audit := &fakeAudit{}
	h := session.NewHandler(session.NewStore(rdb, time.Hour), audit)
	session.RegisterRoutes(r.Group("/"), h)
	return r, audit
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-checked"))
	require.NoError(t, err)
	return token
}

func postLogin(r *gin.Engine, token string) *httptest.ResponseRecorder {
	form := url.Values{"token": {token}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.Regexp().ExpectSet(`hradmin:session:.+`, `.+`, time.Hour).SetVal("OK")
	r, audit := newLoginRouter(t, rdb)

	token := signedToken(t, jwt.MapClaims{
		"sub": "admin@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := postLogin(r, token)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/departments", w.Header().Get("Location"))

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	require.Len(t, audit.logs, 1)
	assert.Equal(t, "ADMIN_LOGIN", audit.logs[0].Action)
	assert.Equal(t, "admin@example.com", audit.logs[0].Meta["subject"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_RejectsExpiredToken(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	r, audit := newLoginRouter(t, rdb)

	token := signedToken(t, jwt.MapClaims{
		"sub": "admin@example.com",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	w := postLogin(r, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Access token is expired")
	assert.Empty(t, audit.logs)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogin_RejectsMalformedToken(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	r, _ := newLoginRouter(t, rdb)

	w := postLogin(r, "definitely-not-a-jwt")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "That does not look like a valid access token")
}

func TestLogin_RejectsEmptyToken(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	r, _ := newLoginRouter(t, rdb)

	w := postLogin(r, "   ")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Access token is required")
}

func TestLogout_ClearsSession(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("hradmin:session:sid-9").SetVal(1)
	r, _ := newLoginRouter(t, rdb)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid-9"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowLogin_RendersForm(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	r, _ := newLoginRouter(t, rdb)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Access token")
}
