package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CommandRecord is a single entry in the command execution history.
type CommandRecord struct {
	UUID         uuid.UUID `json:"uuid"`
	CreatedAt    time.Time `json:"created_at"`
	EmployeeID   *int64    `json:"employee_id,omitempty"`
	CommandText  string    `json:"command_text"`
	Action       string    `json:"action"`
	Success      bool      `json:"success"`
	ResponseTime int64     `json:"response_time_ms"`
	Language     string    `json:"language"`
}

// HistoryStore persists processed commands.
type HistoryStore interface {
	Put(ctx context.Context, record *CommandRecord) error
	Get(ctx context.Context, recordUUID uuid.UUID) (*CommandRecord, error)
	List(ctx context.Context, limit int) ([]CommandRecord, error)
	PurgeDeleted(ctx context.Context) error
	Close() error
}
