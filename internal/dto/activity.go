package dto

import (
	"time"

	"household-expenses/internal/models"
)

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Offset int `query:"offset" validate:"gte=0"`
	Limit  int `query:"limit" validate:"gte=0,lte=100"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore bool  `json:"has_more"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
}

// ActivityEntry is one audit log line of the household feed
type ActivityEntry struct {
	ID         string                 `json:"id"`
	Action     string                 `json:"action"`
	Resource   string                 `json:"resource"`
	ResourceID string                 `json:"resource_id,omitempty"`
	Summary    string                 `json:"summary"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// ListActivityResponse is a page of the activity feed
type ListActivityResponse struct {
	Entries    []ActivityEntry `json:"entries"`
	Pagination PaginationInfo  `json:"pagination"`
}

func NewActivityEntries(logs []models.AuditLog) []ActivityEntry {
	out := make([]ActivityEntry, len(logs))
	for i := range logs {
		out[i] = ActivityEntry{
			ID:         logs[i].ID.String(),
			Action:     logs[i].Action,
			Resource:   logs[i].Resource,
			ResourceID: logs[i].ResourceID,
			Summary:    logs[i].Summary(),
			Metadata:   logs[i].Metadata,
			CreatedAt:  logs[i].CreatedAt,
		}
	}
	return out
}
