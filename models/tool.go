// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tool is a quality-management tool of the catalog. Tools are seeded once
// and read-only afterwards.
type Tool struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`

	// FilePath is the catalog page of the tool, relative to the static root.
	FilePath string `json:"filePath"`

	IsActive bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the Tool model.
func (t Tool) TableName() string {
	return "tools"
}
