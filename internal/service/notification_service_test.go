package service

import (
	"context"
	"testing"

	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/repository/specification"
	"climb-coach-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}
func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, userId uuid.UUID) error { return nil }
func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, userId uuid.UUID) error  { return nil }
func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	return 0, nil
}
func (r *fakeNotificationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	return nil, nil
}

type fakeDelivery struct {
	sent      []entity.Notification
	broadcast []entity.Notification
}

func (d *fakeDelivery) Send(userID uuid.UUID, n entity.Notification) { d.sent = append(d.sent, n) }
func (d *fakeDelivery) Broadcast(n entity.Notification)              { d.broadcast = append(d.broadcast, n) }

func TestHandleEvent_UnknownTypeIsSkipped(t *testing.T) {
	repo := &fakeNotificationRepo{}
	delivery := &fakeDelivery{}
	svc := NewNotificationService(repo, nil, delivery, noopLogger{})

	evt := events.BaseEvent{Type: "SOMETHING_ELSE", Data: map[string]interface{}{}}
	err := svc.handleEvent(context.Background(), evt)
	require.NoError(t, err)
	assert.Empty(t, repo.created)
	assert.Empty(t, delivery.broadcast)
}

func TestHandleEvent_StatusChangeBroadcastsWithRenderedMessage(t *testing.T) {
	repo := &fakeNotificationRepo{}
	delivery := &fakeDelivery{}
	svc := NewNotificationService(repo, nil, delivery, noopLogger{})

	scenarioId := uuid.New()
	evt := events.NewScenarioStatusChanged(scenarioId, "pending", "in_review")

	err := svc.handleEvent(context.Background(), evt)
	require.NoError(t, err)

	// No user_id in the payload, so nothing persists; the hub gets it.
	assert.Empty(t, repo.created)
	require.Len(t, delivery.broadcast, 1)

	n := delivery.broadcast[0]
	assert.Equal(t, events.TypeScenarioStatusChanged, n.TypeCode)
	assert.Contains(t, n.Message, scenarioId.String())
	assert.Contains(t, n.Message, "pending")
	assert.Contains(t, n.Message, "in_review")
	assert.Equal(t, "in_review", n.Metadata["new_status"])
}

func TestHandleEvent_TargetedEventPersistsAndSends(t *testing.T) {
	repo := &fakeNotificationRepo{}
	delivery := &fakeDelivery{}
	svc := NewNotificationService(repo, nil, delivery, noopLogger{})

	userId := uuid.New()
	evt := events.BaseEvent{
		Type: events.TypeReviewSubmitted,
		Data: map[string]interface{}{
			"scenario_id": uuid.New().String(),
			"user_id":     userId.String(),
		},
	}

	err := svc.handleEvent(context.Background(), evt)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, userId, repo.created[0].UserId)
	assert.False(t, repo.created[0].IsRead)

	require.Len(t, delivery.sent, 1)
	assert.Empty(t, delivery.broadcast)
}
