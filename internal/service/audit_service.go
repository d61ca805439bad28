package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/vehicle-registry/internal/config"
	"github.com/spec-kit/vehicle-registry/internal/events"
	"github.com/spec-kit/vehicle-registry/internal/persistence"
)

// AuditService records mutation events into a capped Redis list and
// the structured log. The trail is advisory; a missing Redis
// connection degrades to log-only.
type AuditService struct {
	dispatcher events.Dispatcher
	redis      *persistence.Redis
	logger     *zap.Logger
	cfg        config.AuditConfig
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, redis *persistence.Redis, logger *zap.Logger, cfg config.AuditConfig) *AuditService {
	return &AuditService{dispatcher: dispatcher, redis: redis, logger: logger, cfg: cfg}
}

// RegisterHandlers subscribes to every mutation event.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventAdministratorCreated, a.record)
	a.dispatcher.Subscribe(events.EventVehicleCreated, a.record)
	a.dispatcher.Subscribe(events.EventVehicleUpdated, a.record)
	a.dispatcher.Subscribe(events.EventVehicleDeleted, a.record)
}

func (a *AuditService) record(ctx context.Context, event events.Event) error {
	a.logger.Info("audit",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("actor", event.Actor.Email),
		zap.Any("payload", event.Payload),
	)

	if a.redis == nil || a.redis.Client == nil {
		return nil
	}

	entry, err := json.Marshal(event)
	if err != nil {
		return err
	}
	pipe := a.redis.Client.Pipeline()
	pipe.LPush(ctx, a.cfg.Key, entry)
	pipe.LTrim(ctx, a.cfg.Key, 0, a.cfg.MaxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		a.logger.Warn("audit write failed", zap.Error(err))
	}
	return nil
}

// Recent returns the newest audit entries, capped at limit.
func (a *AuditService) Recent(ctx context.Context, limit int64) ([]events.Event, error) {
	if a.redis == nil || a.redis.Client == nil {
		return []events.Event{}, nil
	}
	if limit <= 0 || limit > a.cfg.MaxEntries {
		limit = a.cfg.MaxEntries
	}
	raw, err := a.redis.Client.LRange(ctx, a.cfg.Key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]events.Event, 0, len(raw))
	for _, item := range raw {
		var event events.Event
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			continue
		}
		entries = append(entries, event)
	}
	return entries, nil
}
