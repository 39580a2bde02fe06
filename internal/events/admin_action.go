package events

import "time"

const AdminActionTopic = "hradmin.audit-log"

// AdminActionEvent diterbitkan setiap mutasi entitas yang sukses lewat console.
// Konsumennya pipeline audit; console sendiri tidak pernah membacanya.
type AdminActionEvent struct {
	Entity     string    `json:"entity"` // "department" / "employee"
	Action     string    `json:"action"` // "create" / "update" / "delete"
	EntityID   int64     `json:"entity_id"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
