// Package events broadcasts appended activity records over the message
// broker so dashboards can tail the feed without polling.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ariel-systems/ariel-bridge/common/logging"
	"github.com/ariel-systems/ariel-bridge/common/messaging"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/activity"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/metrics"
)

// ActivityEvent is the wire form of a broadcast activity record.
type ActivityEvent struct {
	ID     string          `json:"id"`
	Domain string          `json:"domain"`
	Record activity.Record `json:"record"`
}

// Publisher sends activity events for one bridge domain. A nil Publisher or
// one without a broker connection is a no-op, so handlers never need to care
// whether broadcasting is enabled.
type Publisher struct {
	client  messaging.Client
	domain  string
	subject string
	logger  *logging.Logger
}

// NewPublisher creates a Publisher for the given domain. client may be nil.
func NewPublisher(client messaging.Client, domain string, logger *logging.Logger) *Publisher {
	return &Publisher{
		client:  client,
		domain:  domain,
		subject: messaging.ActivitySubject(domain),
		logger:  logger,
	}
}

// Publish broadcasts a record. Failures are logged and counted, never
// returned: broadcasting is best-effort and must not affect the request
// that produced the record.
func (p *Publisher) Publish(ctx context.Context, rec activity.Record) {
	if p == nil || p.client == nil || !p.client.IsConnected() {
		return
	}

	event := ActivityEvent{
		ID:     uuid.New().String(),
		Domain: p.domain,
		Record: rec,
	}

	pubCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := p.client.PublishJSON(pubCtx, p.subject, event); err != nil {
		metrics.BroadcastErrors.WithLabelValues(p.domain).Inc()
		p.logger.WarnContext(ctx, "Failed to broadcast activity",
			logging.Subject(p.subject),
			logging.Error(err),
		)
	}
}
