package otel

import (
	"context"
	"testing"

	confv1 "connect-account-service/internal/conf/v1"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetupOTelSDK_Disabled(t *testing.T) {
	logger := zap.NewNop()

	shutdown, err := SetupOTelSDK(context.Background(), nil, logger)
	assert.NoError(t, err)
	assert.Nil(t, shutdown)

	shutdown, err = SetupOTelSDK(context.Background(), &confv1.Trace{Enabled: false}, logger)
	assert.NoError(t, err)
	assert.Nil(t, shutdown)
}

func TestSetupOTelSDK_MissingEndpoint(t *testing.T) {
	_, err := SetupOTelSDK(context.Background(), &confv1.Trace{Enabled: true}, zap.NewNop())
	assert.Error(t, err)
}
