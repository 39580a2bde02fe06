package app

import (
	"html/template"
	"net/http"

	"hr-admin/internal/bootstrap"
	"hr-admin/internal/config"
	"hr-admin/internal/department"
	"hr-admin/internal/employee"
	kafkamsg "hr-admin/internal/messaging/kafka"
	"hr-admin/internal/middleware"
	"hr-admin/internal/session"
	"hr-admin/internal/shared/connection"
	"hr-admin/internal/shared/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp merakit seluruh dependency console dan mendaftarkan route.
func BuildApp(router *gin.Engine, cfg config.Config, audit bootstrap.AuditLogger) error {
	// 1. Infrastructure
	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	var auditStream kafkamsg.AuditPublisher = kafkamsg.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		auditStream = kafkamsg.NewAuditPublisher(kafkamsg.NewWriter(cfg.KafkaBrokers))
		zap.L().Info("audit stream enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	sessions := session.NewStore(redisClient, cfg.SessionTTL)
	api := upstream.New(cfg.APIBaseURL, cfg.APITimeout)

	// 2. Entity modules
	deptClient := department.NewClient(api)
	deptStore := department.NewStore(deptClient)
	deptHandler := department.NewHandler(deptStore, sessions, auditStream)

	empClient := employee.NewClient(api)
	empStore := employee.NewStore(empClient)
	empHandler := employee.NewHandler(empStore, deptClient, sessions, auditStream)

	sessionHandler := session.NewHandler(sessions, audit)

	// 3. Routes
	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	router.LoadHTMLGlob(cfg.TemplateGlob)
	guard := middleware.RequireSession(sessions)

	root := router.Group("/")
	session.RegisterRoutes(root, sessionHandler)
	department.RegisterRoutes(root, deptHandler, guard)
	employee.RegisterRoutes(root, empHandler, guard)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/departments")
	})

	return nil
}
