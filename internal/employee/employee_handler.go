package employee

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hr-admin/internal/department"
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
	"firstName":    "First name",
	"lastName":     "Last name",
	"email":        "Email",
	"dateOfBirth":  "Date of birth",
	"salary":       "Salary",
	"departmentId": "Department",
}

// DepartmentLister mengisi dropdown department di form employee.
type DepartmentLister interface {
	GetAll(ctx context.Context) ([]department.Department, error)
}

type SessionClearer interface {
	Clear(ctx context.Context, sessionID string) error
}

type Handler struct {
	store       Store
	departments DepartmentLister
	sessions    SessionClearer
	audit       kafka.AuditPublisher
	logger      *zap.Logger
}

func NewHandler(
	store Store,
	departments DepartmentLister,
	sessions SessionClearer,
	audit kafka.AuditPublisher,
	logger ...*zap.Logger,
) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{
		store:       store,
		departments: departments,
		sessions:    sessions,
		audit:       audit,
		logger:      l,
	}
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
	form, values, preErrs := parseForm(c)

	if errs := h.validate(form, preErrs); len(errs) > 0 {
		h.logger.Debug("create employee validation failed")
		h.render(c, http.StatusBadRequest, values, errs, 0)
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
	webview.SetFlash(c, "success", "Employee created successfully!")
	h.redirectToList(c)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		webview.SetFlash(c, "danger", apierror.ErrInvalidInput.Message)
		h.redirectToList(c)
		return
	}

	form, values, preErrs := parseForm(c)

	if errs := h.validate(form, preErrs); len(errs) > 0 {
		h.logger.Debug("update employee validation failed", zap.Int64("employee_id", id))
		h.render(c, http.StatusBadRequest, values, errs, id)
		return
	}

	update := UpdateEmployeeRequest{
		ID:           id,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		DateOfBirth:  form.DateOfBirth,
		Salary:       form.Salary,
		DepartmentID: form.DepartmentID,
	}

	if err := h.store.Update(c.Request.Context(), id, update); err != nil {
		if apierror.IsUnauthorized(err) {
			h.expireSession(c)
			return
		}
		webview.SetFlash(c, "danger", h.store.Snapshot().Err)
		h.redirectToList(c)
		return
	}

	h.publishAudit(c, "update", id)
	webview.SetFlash(c, "success", "Employee updated successfully!")
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
	webview.SetFlash(c, "success", "Employee deleted successfully!")
	h.redirectToList(c)
}

// parseForm membaca nilai form mentah. Konversi angka yang gagal dicatat
// sebagai error tipe, bukan dibiarkan jatuh ke pesan validator generik.
func parseForm(c *gin.Context) (CreateEmployeeRequest, map[string]string, map[string]string) {
	values := map[string]string{
		"firstName":    strings.TrimSpace(c.PostForm("firstName")),
		"lastName":     strings.TrimSpace(c.PostForm("lastName")),
		"email":        strings.TrimSpace(c.PostForm("email")),
		"dateOfBirth":  strings.TrimSpace(c.PostForm("dateOfBirth")),
		"salary":       strings.TrimSpace(c.PostForm("salary")),
		"departmentId": strings.TrimSpace(c.PostForm("departmentId")),
	}
	preErrs := make(map[string]string)

	form := CreateEmployeeRequest{
		FirstName:   values["firstName"],
		LastName:    values["lastName"],
		Email:       values["email"],
		DateOfBirth: values["dateOfBirth"],
	}

	if raw := values["salary"]; raw != "" {
		salary, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			preErrs["salary"] = "Salary must be a number"
		case salary == 0:
			// 0 akan menabrak tag required (zero value) dengan pesan yang
			// salah arah; user mengisi angka, masalahnya di rentang
			preErrs["salary"] = "Salary must be positive"
		default:
			form.Salary = salary
		}
	}

	if raw := values["departmentId"]; raw != "" {
		deptID, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			form.DepartmentID = deptID
		}
	}

	return form, values, preErrs
}

func (h *Handler) validate(form CreateEmployeeRequest, preErrs map[string]string) map[string]string {
	errs := make(map[string]string)

	if err := binding.Validator.ValidateStruct(&form); err != nil {
		for field, msg := range apierror.FieldMessages(err, fieldLabels) {
			errs[field] = msg
		}
	}
	// error konversi menang atas pesan validator untuk field yang sama
	for field, msg := range preErrs {
		errs[field] = msg
	}
	if _, bad := errs["departmentId"]; bad {
		errs["departmentId"] = "Please select a department"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (h *Handler) render(c *gin.Context, status int, values map[string]string, formErrors map[string]string, editingID int64) {
	snap := h.store.Snapshot()

	depts, err := h.departments.GetAll(c.Request.Context())
	if err != nil {
		// dropdown kosong masih bisa dirender; biarkan user lihat tabel
		h.logger.Warn("load departments for form failed", zap.Error(err))
	}

	c.HTML(status, "employees.html", gin.H{
		"Title":       "Employees",
		"Active":      "employees",
		"Items":       snap.Items,
		"Error":       snap.Err,
		"Pagination":  webview.NewPagination(snap.TotalCount, snap.Page, snap.PageSize),
		"PageSizes":   webview.PageSizes,
		"Flash":       webview.TakeFlash(c),
		"Departments": depts,
		"Form":        values,
		"FormErrors":  formErrors,
		"ShowModal":   len(formErrors) > 0,
		"EditingID":   editingID,
	})
}

func (h *Handler) redirectToList(c *gin.Context) {
	snap := h.store.Snapshot()
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/employees?page=%d&pageSize=%d", snap.Page, snap.PageSize))
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
		Entity:     "employee",
		Action:     action,
		EntityID:   id,
		RequestID:  contextutil.GetRequestID(c.Request.Context()),
		OccurredAt: time.Now().UTC(),
	}
	if err := h.audit.PublishAdminAction(c.Request.Context(), event); err != nil {
		h.logger.Warn("publish audit event failed", zap.Error(err))
	}
}
