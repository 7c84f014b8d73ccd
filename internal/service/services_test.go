package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/epqs-catalog/internal/config"
	"github.com/MKhiriev/epqs-catalog/internal/logger"
	"github.com/MKhiriev/epqs-catalog/internal/mock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)

	services, err := NewServices(mock.NewMockStorage(ctrl), &config.StructuredConfig{App: testAppConfig}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ToolService)
	assert.NotNil(t, services.UsageService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_NoVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := &config.StructuredConfig{App: testAppConfig}
	cfg.App.Version = ""

	_, err := NewServices(mock.NewMockStorage(ctrl), cfg, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
