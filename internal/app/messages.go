// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into catalog API
// response bodies. Clients and tests match on them, so the wording is part of
// the API.
package app

// Error messages, written as {"error": "..."}.
const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgRegisterFieldsRequired is returned when a registration request
	// misses a field or a field is out of bounds.
	MsgRegisterFieldsRequired = "username, email and password required"

	// MsgUserAlreadyExists is returned when the username or email is taken.
	MsgUserAlreadyExists = "username or email already exists"

	MsgRegistrationUnavailable = "registration not available in fallback mode"

	MsgLoginFieldsRequired = "username and password required"

	// MsgInvalidCredentials covers unknown users, inactive users and wrong
	// passwords alike.
	MsgInvalidCredentials = "invalid credentials"

	MsgLoginUnavailable = "login not available in fallback mode"

	// MsgNotLoggedIn is returned by endpoints that need a session.
	MsgNotLoggedIn = "user not logged in"

	MsgToolIDRequired = "valid toolId required"
	MsgUnknownTool    = "unknown tool"

	MsgStorageUnavailable = "storage unavailable"

	MsgDatabaseInitFailed = "database initialization failed"
)

// Success messages, written as {"message": "..."}.
const (
	MsgServerRunning = "EPQS catalog server is running"
	MsgServerData    = "EPQS catalog server data"

	MsgUserCreated = "User created successfully"

	MsgLoginSuccessful = "Login successful"
	// MsgFallbackSuffix is appended to MsgLoginSuccessful in fallback mode.
	MsgFallbackSuffix = " (fallback mode)"

	MsgLogoutSuccessful = "Logout successful"

	MsgUsageLogged         = "Usage logged successfully"
	MsgUsageLoggedFallback = "Usage logged (fallback mode)"

	MsgDataSaved = "Data saved successfully"

	MsgDatabaseInitialized = "Database initialized successfully"
)
