package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/epqs-catalog/internal/config"
)

func TestListTools_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &toolRepository{db: db}

	mock.ExpectQuery("SELECT id, name, description, category, file_path FROM tools WHERE is_active = .+ ORDER BY name ASC").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "category", "file_path"}).
			AddRow(int64(1), "5 Porquês", "Ferramenta para análise de causa raiz", "Qualidade", "5_porques.html").
			AddRow(int64(2), "5S", nil, nil, nil))

	tools, err := repo.ListTools(context.Background())

	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "5 Porquês", tools[0].Name)
	assert.Equal(t, "5_porques.html", tools[0].FilePath)
	assert.Equal(t, "", tools[1].Description)
	assert.True(t, tools[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTools_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &toolRepository{db: db}

	mock.ExpectQuery("FROM tools").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "category", "file_path"}))

	tools, err := repo.ListTools(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tools)
	assert.Empty(t, tools)
}

func TestListTools_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &toolRepository{db: db}

	mock.ExpectQuery("FROM tools").WillReturnError(errors.New("boom"))

	_, err := repo.ListTools(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListTools_RowError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &toolRepository{db: db}

	mock.ExpectQuery("FROM tools").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "category", "file_path"}).
			AddRow(int64(1), "5S", "", "", "").
			RowError(0, errors.New("row broken")))

	_, err := repo.ListTools(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestInitializeSchema_Success(t *testing.T) {
	db, mock := newMockDB(t)

	var migratedDialect string
	repo := &toolRepository{
		db: db,
		migrate: func(ctx context.Context, conn *sql.DB, dialect string) error {
			migratedDialect = dialect
			return nil
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tools .+ ON CONFLICT \\(name\\) DO NOTHING").
		WillReturnResult(sqlmock.NewResult(0, int64(len(defaultCatalog))))
	mock.ExpectCommit()

	require.NoError(t, repo.InitializeSchema(context.Background()))
	assert.Equal(t, config.DriverPostgres, migratedDialect)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitializeSchema_MigrationError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &toolRepository{
		db: db,
		migrate: func(ctx context.Context, conn *sql.DB, dialect string) error {
			return errors.New("migration error")
		},
	}

	err := repo.InitializeSchema(context.Background())

	assert.ErrorIs(t, err, ErrMigratingSchema)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitializeSchema_SeedErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := &toolRepository{
		db:      db,
		migrate: func(context.Context, *sql.DB, string) error { return nil },
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tools").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.InitializeSchema(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
