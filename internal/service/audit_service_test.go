package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/vehicle-registry/internal/config"
	"github.com/spec-kit/vehicle-registry/internal/events"
)

func TestAuditServiceDegradesWithoutRedis(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewAuditService(dispatcher, nil, zap.NewNop(), config.AuditConfig{Key: "test:audit", MaxEntries: 10})
	svc.RegisterHandlers()

	// log-only mode: publication must still succeed
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		ID:   "1",
		Type: events.EventVehicleCreated,
	}))

	entries, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
