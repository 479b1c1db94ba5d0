package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/roadtripmate/backend/internal/pkg/constants"
	"github.com/roadtripmate/backend/internal/pkg/logger"
	"github.com/roadtripmate/backend/internal/pkg/mail"
	natspkg "github.com/roadtripmate/backend/internal/pkg/nats"
)

// Handler consumes notification events and turns them into email. Every
// failure here is logged and dropped; mail never blocks or fails the
// request that produced the event.
type Handler struct {
	mailer     mail.Mailer
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewHandler creates a new NATS handler and subscribes to the
// notification subjects
func NewHandler(mailer mail.Mailer, natsClient *natspkg.Client) (*Handler, error) {
	h := &Handler{
		mailer:     mailer,
		natsClient: natsClient,
	}

	if err := h.initConsumers(); err != nil {
		return nil, fmt.Errorf("failed to initialize NATS consumers: %w", err)
	}

	return h, nil
}

// initConsumers initializes all NATS consumers
func (h *Handler) initConsumers() error {
	registeredSub, err := h.natsClient.Subscribe(constants.SubjectUserRegistered, func(msg *nats.Msg) {
		if err := h.handleUserRegistered(msg.Data); err != nil {
			logger.Warn("Failed to handle user registered event",
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to registration events: %w", err)
	}
	h.subs = append(h.subs, registeredSub)

	collaboratorSub, err := h.natsClient.Subscribe(constants.SubjectCollaboratorAdded, func(msg *nats.Msg) {
		if err := h.handleCollaboratorAdded(msg.Data); err != nil {
			logger.Warn("Failed to handle collaborator added event",
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to collaborator events: %w", err)
	}
	h.subs = append(h.subs, collaboratorSub)

	return nil
}

// Close unsubscribes from all NATS subscriptions
func (h *Handler) Close() {
	for _, sub := range h.subs {
		sub.Unsubscribe()
	}
}
