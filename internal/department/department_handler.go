package department

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hr-admin/internal/events"
	"hr-admin/internal/messaging/kafka"
	"hr-admin/internal/middleware"
	"hr-admin/internal/session"
	"hr-admin/internal/shared/apierror"
	"hr-admin/internal/shared/contextutil"
	"hr-admin/internal/shared/webview"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

var fieldLabels = map[string]string{
	"departmentCode": "Code",
	"departmentName": "Name",
}

// SessionClearer adalah potongan session.Store yang dipakai saat upstream
// menjawab 401: sesi console ikut diakhiri.
type SessionClearer interface {
	Clear(ctx context.Context, sessionID string) error
}

type Handler struct {
	store    Store
	sessions SessionClearer
	audit    kafka.AuditPublisher
	logger   *zap.Logger
}

func NewHandler(store Store, sessions SessionClearer, audit kafka.AuditPublisher, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("department.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.handler")
	}
	return &Handler{store: store, sessions: sessions, audit: audit, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(webview.DefaultPageSize)))

	err := h.store.Fetch(c.Request.Context(), page, size)
	if apierror.IsUnauthorized(err) {
		h.expireSession(c)
		return
	}

	h.render(c, http.StatusOK, nil, nil, 0)
}

func (h *Handler) Create(c *gin.Context) {
	form := CreateDepartmentRequest{
		Code: strings.TrimSpace(c.PostForm("departmentCode")),
		Name: strings.TrimSpace(c.PostForm("departmentName")),
	}

	if err := binding.Validator.ValidateStruct(&form); err != nil {
		h.logger.Debug("create department validation failed", zap.Error(err))
		h.render(c, http.StatusBadRequest, formValues(form.Code, form.Name), apierror.FieldMessages(err, fieldLabels), 0)
		return
	}
	if h.store.CodeExists(form.Code, 0) {
		h.render(c, http.StatusBadRequest, formValues(form.Code, form.Name), map[string]string{
			"departmentCode": "Code already exists",
		}, 0)
		return
	}

	created, err := h.store.Create(c.Request.Context(), form)
	if err != nil {
		if apierror.IsUnauthorized(err) {
			h.expireSession(c)
			return
		}
		webview.SetFlash(c, "danger", h.store.Snapshot().Err)
		h.redirectToList(c)
		return
	}

	h.publishAudit(c, "create", created.ID)
	webview.SetFlash(c, "success", "Department created successfully!")
	h.redirectToList(c)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		webview.SetFlash(c, "danger", apierror.ErrInvalidInput.Message)
		h.redirectToList(c)
		return
	}

	form := UpdateDepartmentRequest{
		ID:   id,
		Code: strings.TrimSpace(c.PostForm("departmentCode")),
		Name: strings.TrimSpace(c.PostForm("departmentName")),
	}

	if err := binding.Validator.ValidateStruct(&form); err != nil {
		h.logger.Debug("update department validation failed", zap.Error(err))
		h.render(c, http.StatusBadRequest, formValues(form.Code, form.Name), apierror.FieldMessages(err, fieldLabels), id)
		return
	}
	if h.store.CodeExists(form.Code, id) {
		h.render(c, http.StatusBadRequest, formValues(form.Code, form.Name), map[string]string{
			"departmentCode": "Code already exists",
		}, id)
		return
	}

	if err := h.store.Update(c.Request.Context(), id, form); err != nil {
		if apierror.IsUnauthorized(err) {
			h.expireSession(c)
			return
		}
		webview.SetFlash(c, "danger", h.store.Snapshot().Err)
		h.redirectToList(c)
		return
	}

	h.publishAudit(c, "update", id)
	webview.SetFlash(c, "success", "Department updated successfully!")
	h.redirectToList(c)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		webview.SetFlash(c, "danger", apierror.ErrInvalidInput.Message)
		h.redirectToList(c)
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if apierror.IsUnauthorized(err) {
			h.expireSession(c)
			return
		}
		webview.SetFlash(c, "danger", h.store.Snapshot().Err)
		h.redirectToList(c)
		return
	}

	h.publishAudit(c, "delete", id)
	webview.SetFlash(c, "success", "Department deleted successfully!")
	h.redirectToList(c)
}

// render menggambar halaman dari snapshot store, tanpa fetch tambahan:
// saat validasi gagal tidak boleh ada call ke upstream.
func (h *Handler) render(c *gin.Context, status int, form map[string]string, formErrors map[string]string, editingID int64) {
	snap := h.store.Snapshot()
	c.HTML(status, "departments.html", gin.H{
		"Title":      "Departments",
		"Active":     "departments",
		"Items":      snap.Items,
		"Error":      snap.Err,
		"Pagination": webview.NewPagination(snap.TotalCount, snap.Page, snap.PageSize),
		"PageSizes":  webview.PageSizes,
		"Flash":      webview.TakeFlash(c),
		"Form":       form,
		"FormErrors": formErrors,
		"ShowModal":  len(formErrors) > 0,
		"EditingID":  editingID,
	})
}

// redirectToList kembali ke halaman yang sedang dilihat; handler List yang
// akan fetch ulang supaya field hitungan server (timestamp dsb.) segar.
func (h *Handler) redirectToList(c *gin.Context) {
	snap := h.store.Snapshot()
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/departments?page=%d&pageSize=%d", snap.Page, snap.PageSize))
}

func (h *Handler) expireSession(c *gin.Context) {
	if sid := c.GetString(middleware.SessionIDKey); sid != "" {
		if err := h.sessions.Clear(c.Request.Context(), sid); err != nil {
			h.logger.Warn("clear session failed", zap.Error(err))
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) publishAudit(c *gin.Context, action string, id int64) {
	event := events.AdminActionEvent{
		Entity:     "department",
		Action:     action,
		EntityID:   id,
		RequestID:  contextutil.GetRequestID(c.Request.Context()),
		OccurredAt: time.Now().UTC(),
	}
	if err := h.audit.PublishAdminAction(c.Request.Context(), event); err != nil {
		// audit gagal tidak boleh mengganggu user
		h.logger.Warn("publish audit event failed", zap.Error(err))
	}
}

func formValues(code, name string) map[string]string {
	return map[string]string{
		"departmentCode": code,
		"departmentName": name,
	}
}
