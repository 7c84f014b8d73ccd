// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// UsageEvent records a single use of a tool by a user. Events are
// append-only: never updated or deleted.
type UsageEvent struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	ToolID int64 `json:"tool_id"`

	UsageDate time.Time `json:"usage_date"`

	// SessionDuration is the time spent in the tool, in seconds.
	SessionDuration *int `json:"session_duration,omitempty"`

	// DataSaved is an arbitrary JSON document saved by the tool.
	DataSaved json.RawMessage `json:"data_saved,omitempty"`
}

// TableName returns the name of the database table
// associated with the UsageEvent model.
func (u UsageEvent) TableName() string {
	return "tool_usage"
}

// LogUsageRequest is the body of POST /api/log-usage.
type LogUsageRequest struct {
	ToolID          int64           `json:"toolId"`
	SessionDuration *int            `json:"sessionDuration,omitempty"`
	DataSaved       json.RawMessage `json:"dataSaved,omitempty"`
}

// ToolStatistics is one aggregated row of usage statistics.
type ToolStatistics struct {
	Name       string `json:"name"`
	UsageCount int64  `json:"usageCount"`

	// AvgDuration is nil when the tool has no events with a duration.
	AvgDuration *float64 `json:"avgDuration"`
}
