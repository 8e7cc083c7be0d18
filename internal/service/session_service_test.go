package service

import (
	"context"
	"testing"
	"time"

	"climb-coach-be/internal/dto"
	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/repository/contract"
	"climb-coach-be/internal/repository/specification"
	"climb-coach-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	sessions []*entity.TrainingSession
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.TrainingSession) error {
	r.sessions = append(r.sessions, s)
	return nil
}
func (r *fakeSessionRepo) Update(ctx context.Context, s *entity.TrainingSession) error { return nil }
func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TrainingSession, error) {
	if len(r.sessions) == 0 {
		return nil, nil
	}
	return r.sessions[0], nil
}
func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TrainingSession, error) {
	return r.sessions, nil
}
func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.sessions)), nil
}

type fakeSessionUow struct {
	fakeUow
	sessions *fakeSessionRepo
}

func (u *fakeSessionUow) TrainingSessionRepository() contract.TrainingSessionRepository {
	return u.sessions
}

func newSessionService(sessions ...*entity.TrainingSession) ISessionService {
	uow := &fakeSessionUow{sessions: &fakeSessionRepo{sessions: sessions}}
	return NewSessionService(&fakeSessionFactory{uow: uow})
}

type fakeSessionFactory struct {
	uow *fakeSessionUow
}

func (f *fakeSessionFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func quality(v float64) *float64 { return &v }

func TestStartOfWeek(t *testing.T) {
	// Wednesday
	wed := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, startOfWeek(wed))

	// Sunday rolls back to the previous Monday, not forward.
	sun := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, startOfWeek(sun))

	// Monday is its own week start.
	assert.Equal(t, monday, startOfWeek(monday))
}

func TestWeeklyStats_EmptyWeeksIncluded(t *testing.T) {
	userId := uuid.New()
	now := time.Now()
	svc := newSessionService(
		&entity.TrainingSession{UserId: userId, Date: now, DurationMinutes: 60, Quality: quality(7)},
		&entity.TrainingSession{UserId: userId, Date: now, DurationMinutes: 30, Quality: quality(9)},
	)

	stats, err := svc.WeeklyStats(context.Background(), userId, 4)
	require.NoError(t, err)
	require.Len(t, stats, 4)

	// Trailing weeks are present even with zero sessions.
	for _, s := range stats[:3] {
		assert.Zero(t, s.SessionCount)
		assert.Zero(t, s.TotalMinutes)
		assert.Nil(t, s.AvgQuality)
	}

	current := stats[3]
	assert.Equal(t, startOfWeek(now), current.WeekStart)
	assert.Equal(t, 2, current.SessionCount)
	assert.Equal(t, 90, current.TotalMinutes)
	require.NotNil(t, current.AvgQuality)
	assert.InDelta(t, 8.0, *current.AvgQuality, 0.001)
}

func TestWeeklyStats_CountsUTCDatedSessions(t *testing.T) {
	userId := uuid.New()
	// Stored timestamps commonly come back UTC; bucketing must not depend
	// on the date's location matching the server's.
	svc := newSessionService(
		&entity.TrainingSession{UserId: userId, Date: time.Now().UTC(), DurationMinutes: 45, Quality: quality(6)},
	)

	stats, err := svc.WeeklyStats(context.Background(), userId, 4)
	require.NoError(t, err)
	require.Len(t, stats, 4)

	current := stats[3]
	assert.Equal(t, 1, current.SessionCount)
	assert.Equal(t, 45, current.TotalMinutes)
	require.NotNil(t, current.AvgQuality)
	assert.InDelta(t, 6.0, *current.AvgQuality, 0.001)
}

func TestWeeklyStats_DefaultsToEightWeeks(t *testing.T) {
	svc := newSessionService()
	stats, err := svc.WeeklyStats(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Len(t, stats, 8)
}

func TestHighestGrade_VScale(t *testing.T) {
	userId := uuid.New()
	svc := newSessionService(
		&entity.TrainingSession{UserId: userId, Discipline: "bouldering", Grade: "V4"},
		&entity.TrainingSession{UserId: userId, Discipline: "bouldering", Grade: "V7"},
		&entity.TrainingSession{UserId: userId, Discipline: "bouldering", Grade: ""},
		&entity.TrainingSession{UserId: userId, Discipline: "bouldering", Grade: "V5"},
	)

	res, err := svc.HighestGrade(context.Background(), userId, "bouldering")
	require.NoError(t, err)
	assert.Equal(t, "V7", res.Grade)
	assert.Equal(t, "bouldering", res.Discipline)
}

func TestHighestGrade_NoGradesLogged(t *testing.T) {
	svc := newSessionService()
	res, err := svc.HighestGrade(context.Background(), uuid.New(), "sport")
	require.NoError(t, err)
	assert.Empty(t, res.Grade)
	assert.Equal(t, "sport", res.Discipline)
}

func TestQuickStart_CreatesStubDatedNow(t *testing.T) {
	userId := uuid.New()
	svc := newSessionService()

	res, err := svc.QuickStart(context.Background(), userId, &dto.QuickStartRequest{SessionType: "volume"})
	require.NoError(t, err)
	assert.Equal(t, "volume", res.SessionType)
	assert.Zero(t, res.DurationMinutes)
	assert.WithinDuration(t, time.Now(), res.Date, 5*time.Second)
}
