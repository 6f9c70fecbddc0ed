// Package activity writes an audit log line for every change made to a
// dashboard's users collection.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/portview/internal/dashboard"
	"github.com/nfrund/portview/internal/module"
	"github.com/nfrund/portview/internal/pubsub"
	"github.com/nfrund/portview/internal/topicmgr"
	"github.com/samber/do/v2"
)

// watchedModule owns the topics this module logs.
const watchedModule = "dashboard"

// Module subscribes to every topic registered by the dashboard.
type Module struct {
	module.BaseModule
	logger *slog.Logger
	topics *topicmgr.Registry
	cancel context.CancelFunc
}

// New creates the activity module.
func New() *Module {
	return &Module{logger: slog.Default().With("module", "activity")}
}

func (m *Module) Name() string {
	return "activity"
}

// Boot starts the subscriptions. They live until Shutdown.
func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	sub, err := do.Invoke[pubsub.Subscriber](i)
	if err != nil {
		return err
	}
	m.topics, err = do.Invoke[*topicmgr.Registry](i)
	if err != nil {
		return err
	}

	subCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	for _, topic := range m.topics.ListByModule(watchedModule) {
		if err := sub.Subscribe(subCtx, topic.Name(), m.Handle); err != nil {
			cancel()
			return fmt.Errorf("failed to subscribe to %s: %w", topic.Name(), err)
		}
	}
	return nil
}

// Handle logs one dashboard event.
func (m *Module) Handle(ctx context.Context, msg pubsub.Message) error {
	var event dashboard.UserEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("failed to decode %s event: %w", msg.Topic, err)
	}

	action := "changed"
	if m.topics != nil {
		if topic, ok := m.topics.Get(msg.Topic); ok && topic.Metadata()["action"] != "" {
			action = topic.Metadata()["action"]
		}
	}
	m.logger.Info("user "+action,
		"topic", msg.Topic,
		"user_id", event.UserID,
		"label", event.Label,
		"workspace", event.Workspace,
	)
	return nil
}

func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
