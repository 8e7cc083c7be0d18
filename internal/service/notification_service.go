package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/pkg/logger"
	"climb-coach-be/internal/repository/contract"
	"climb-coach-be/internal/repository/specification"
	"climb-coach-be/pkg/events"
	pktNats "climb-coach-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification entity.Notification)
	Broadcast(notification entity.Notification)
}

// notificationTemplate maps an event code to the rendered title and
// message. Placeholders like {scenario_id} are filled from the event
// payload.
type notificationTemplate struct {
	Title     string
	Template  string
	Broadcast bool
}

var notificationTemplates = map[string]notificationTemplate{
	events.TypeReviewSubmitted: {
		Title:     "Expert review submitted",
		Template:  "An expert submitted a review for scenario {scenario_id}.",
		Broadcast: true,
	},
	events.TypeScenarioStatusChanged: {
		Title:     "Scenario status changed",
		Template:  "Scenario {scenario_id} moved from {old_status} to {new_status}.",
		Broadcast: true,
	},
}

type NotificationService struct {
	repo       contract.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo contract.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	tmpl, ok := notificationTemplates[event.EventType()]
	if !ok {
		// Unknown event types are skipped, not retried.
		return nil
	}

	notif := s.buildNotification(tmpl, event)

	// A review event addressed to a specific user is stored in their inbox;
	// broadcast events are push-only.
	if uidStr, ok := event.Payload()["user_id"].(string); ok {
		if uid, err := uuid.Parse(uidStr); err == nil {
			notif.UserId = uid
			if err := s.repo.Create(ctx, &notif); err != nil {
				s.logger.Error("NotificationService", "Error saving notification", map[string]interface{}{"error": err})
				return err // NATS will retry
			}
			if s.delivery != nil {
				s.delivery.Send(uid, notif)
			}
			return nil
		}
	}

	if tmpl.Broadcast && s.delivery != nil {
		s.delivery.Broadcast(notif)
	}
	return nil
}

func (s *NotificationService) buildNotification(tmpl notificationTemplate, event events.Event) entity.Notification {
	msg := tmpl.Template
	payload := event.Payload()

	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		valStr := fmt.Sprintf("%v", v)
		msg = strings.ReplaceAll(msg, placeholder, valStr)
	}

	metadata := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		metadata[k] = v
	}

	return entity.Notification{
		Id:        uuid.New(),
		TypeCode:  event.EventType(),
		Title:     tmpl.Title,
		Message:   msg,
		Metadata:  metadata,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
}

// GetNotifications fetches a page of notifications for a user, newest
// first.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	return s.repo.FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}
