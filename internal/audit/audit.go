// Package audit publishes external navigations on the event bus and logs them
// from a background subscriber.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/actorkit-site/internal/pubsub"
)

// TopicExternalNavigation carries one NavigationEvent per redirect.
const TopicExternalNavigation = "site.navigation.external"

// NavigationEvent is the JSON payload published for every external navigation.
type NavigationEvent struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Target    string    `json:"target"`
	RequestID string    `json:"request_id,omitempty"`
	Time      time.Time `json:"time"`
}

type requestKey struct{}

// RequestInfo describes the request that caused a navigation.
type RequestInfo struct {
	Path      string
	RequestID string
}

// WithRequest attaches info to ctx so a later navigation can be attributed.
func WithRequest(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestKey{}, info)
}

func requestFrom(ctx context.Context) RequestInfo {
	info, _ := ctx.Value(requestKey{}).(RequestInfo)
	return info
}

// Navigator publishes a NavigationEvent for each navigation. It satisfies
// redirect.Navigator.
type Navigator struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewNavigator creates a Navigator publishing on pub.
func NewNavigator(pub pubsub.Publisher) *Navigator {
	return &Navigator{pub: pub, now: time.Now}
}

// Navigate publishes the event. Failures are logged and swallowed.
func (n *Navigator) Navigate(ctx context.Context, target string) {
	info := requestFrom(ctx)
	event := NavigationEvent{
		ID:        uuid.NewString(),
		Path:      info.Path,
		Target:    target,
		RequestID: info.RequestID,
		Time:      n.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to encode navigation event", "error", err)
		return
	}

	msg := pubsub.Message{
		Topic:    TopicExternalNavigation,
		Payload:  payload,
		Metadata: map[string]string{"event_id": event.ID},
	}
	if info.RequestID != "" {
		msg.Metadata["request_id"] = info.RequestID
	}

	if err := n.pub.Publish(ctx, msg); err != nil {
		slog.Warn("Failed to publish navigation event", "target", target, "error", err)
	}
}

// Subscribe starts logging navigation events until ctx is cancelled.
func Subscribe(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "audit")

	err := sub.Subscribe(ctx, TopicExternalNavigation, func(_ context.Context, msg pubsub.Message) error {
		var event NavigationEvent
		if err := json.Unmarshal(msg.Payload, &event); err != nil {
			return fmt.Errorf("decode navigation event: %w", err)
		}
		logger.Info("External navigation",
			"event_id", event.ID,
			"path", event.Path,
			"target", event.Target,
			"request_id", event.RequestID,
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", TopicExternalNavigation, err)
	}
	return nil
}
