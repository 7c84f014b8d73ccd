// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/epqs-catalog/models"
)

// Table names come from the models so the queries and the entities agree.
var (
	usersTable     = models.User{}.TableName()
	toolsTable     = models.Tool{}.TableName()
	toolUsageTable = models.UsageEvent{}.TableName()
)

var (
	userColumns = []string{
		"id",
		"username",
		"email",
		"password_hash",
		"password_salt",
		"created_at",
		"last_login",
		"is_active",
	}

	toolColumns = []string{
		"id",
		"name",
		"description",
		"category",
		"file_path",
	}
)

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "password_hash", "password_salt").
		Values(user.Username, user.Email, user.PasswordHash, user.PasswordSalt).
		Suffix("RETURNING id").
		ToSql()
}

func buildTouchLastLoginQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Update(usersTable).
		Set("last_login", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildListToolsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(toolColumns...).
		From(toolsTable).
		Where(sq.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
}

// buildSeedToolsQuery inserts the whole catalog in one statement. Tools that
// already exist are skipped, which keeps seeding idempotent.
func buildSeedToolsQuery(b sq.StatementBuilderType, tools []models.Tool) (string, []any, error) {
	insert := b.Insert(toolsTable).
		Columns("name", "description", "category", "file_path")

	for _, tool := range tools {
		insert = insert.Values(tool.Name, tool.Description, tool.Category, tool.FilePath)
	}

	return insert.Suffix("ON CONFLICT (name) DO NOTHING").ToSql()
}

func buildLogToolUsageQuery(b sq.StatementBuilderType, event models.UsageEvent) (string, []any, error) {
	var duration any
	if event.SessionDuration != nil {
		duration = int64(*event.SessionDuration)
	}

	return b.Insert(toolUsageTable).
		Columns("user_id", "tool_id", "session_duration", "data_saved").
		Values(event.UserID, event.ToolID, duration, jsonParam(event.DataSaved)).
		ToSql()
}

// buildUsageStatisticsQuery aggregates usage per active tool. The user filter
// lives in the join condition so that tools without events still produce a
// row with a zero count.
func buildUsageStatisticsQuery(b sq.StatementBuilderType, userID *int64) (string, []any, error) {
	query := b.Select(
		"t.name",
		"COUNT(tu.id) AS usage_count",
		"CAST(AVG(tu.session_duration) AS DOUBLE PRECISION) AS avg_duration",
	).From(toolsTable + " t")

	if userID != nil {
		query = query.LeftJoin(toolUsageTable+" tu ON t.id = tu.tool_id AND tu.user_id = ?", *userID)
	} else {
		query = query.LeftJoin(toolUsageTable + " tu ON t.id = tu.tool_id")
	}

	return query.
		Where(sq.Eq{"t.is_active": true}).
		GroupBy("t.id", "t.name").
		OrderBy("usage_count DESC", "t.name ASC").
		ToSql()
}

// jsonParam maps empty or null JSON to SQL NULL.
func jsonParam(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return string(raw)
}
