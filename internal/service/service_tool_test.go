package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/mock"
	"github.com/MKhiriev/epqs-catalog/internal/store"
	"github.com/MKhiriev/epqs-catalog/models"
)

func TestToolService_ListTools(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockToolRepository(ctrl)
	svc := NewToolService(repo, logger.Nop())

	want := []models.Tool{{ID: 1, Name: "5S"}, {ID: 2, Name: "FMEA"}}
	repo.EXPECT().ListTools(gomock.Any()).Return(want, nil)

	got, err := svc.ListTools(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestToolService_ListTools_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockToolRepository(ctrl)
	svc := NewToolService(repo, logger.Nop())

	repo.EXPECT().ListTools(gomock.Any()).Return(nil, errors.New("boom"))

	got, err := svc.ListTools(context.Background())

	require.Error(t, err)
	assert.Nil(t, got)
}

func TestToolService_InitializeStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockToolRepository(ctrl)
	svc := NewToolService(repo, logger.Nop())

	repo.EXPECT().InitializeSchema(gomock.Any()).Return(nil)

	assert.NoError(t, svc.InitializeStorage(context.Background()))
}

func TestToolService_InitializeStorage_FallbackMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockToolRepository(ctrl)
	svc := NewToolService(repo, logger.Nop())

	repo.EXPECT().InitializeSchema(gomock.Any()).
		Return(&store.StorageError{Op: "InitializeSchema", Err: store.ErrStorageUnavailable})

	err := svc.InitializeStorage(context.Background())

	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
