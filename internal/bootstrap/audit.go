package bootstrap

import "context"

// AuditLog adalah catatan aksi administratif yang perlu jejak:
// login admin, mutasi entitas, dan lifecycle server.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
