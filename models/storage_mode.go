// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StorageMode tells which storage variant the process runs with.
// It is resolved once at startup.
type StorageMode string

const (
	// StorageConnected means a real relational store is in use.
	StorageConnected StorageMode = "connected"

	// StorageFallback means the fixed hardcoded dataset is served.
	StorageFallback StorageMode = "fallback_mode"
)

// IsFallback reports whether the fixed dataset is served.
func (m StorageMode) IsFallback() bool {
	return m == StorageFallback
}
