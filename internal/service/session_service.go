package service

import (
	"context"
	"time"

	"climb-coach-be/internal/dto"
	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/repository/specification"
	"climb-coach-be/internal/repository/unitofwork"
	"climb-coach-be/pkg/grades"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.SessionResponse, error)
	List(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.SessionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
	QuickStart(ctx context.Context, userId uuid.UUID, req *dto.QuickStartRequest) (*dto.SessionResponse, error)
	WeeklyStats(ctx context.Context, userId uuid.UUID, weeks int) ([]*dto.WeeklyStatsResponse, error)
	HighestGrade(ctx context.Context, userId uuid.UUID, discipline string) (*dto.HighestGradeResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
	}
}

func toSessionResponse(s *entity.TrainingSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:              s.Id,
		Date:            s.Date,
		SessionType:     s.SessionType,
		DurationMinutes: s.DurationMinutes,
		Quality:         s.Quality,
		Grade:           s.Grade,
		Discipline:      s.Discipline,
		Location:        s.Location,
		Outdoor:         s.Outdoor,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (c *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session := entity.TrainingSession{
		Id:              uuid.New(),
		UserId:          userId,
		Date:            req.Date,
		SessionType:     req.SessionType,
		DurationMinutes: req.DurationMinutes,
		Quality:         req.Quality,
		Grade:           req.Grade,
		Discipline:      req.Discipline,
		Location:        req.Location,
		Outdoor:         req.Outdoor,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}

	if err := uow.TrainingSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return toSessionResponse(&session), nil
}

func (c *sessionService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.TrainingSessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return toSessionResponse(session), nil
}

func (c *sessionService) List(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.TrainingSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "date", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		res = append(res, toSessionResponse(s))
	}
	return res, nil
}

func (c *sessionService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.TrainingSessionRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	now := time.Now()
	session.SessionType = req.SessionType
	session.DurationMinutes = req.DurationMinutes
	session.Quality = req.Quality
	session.Grade = req.Grade
	session.Discipline = req.Discipline
	session.Location = req.Location
	session.Outdoor = req.Outdoor
	session.Notes = req.Notes
	session.UpdatedAt = &now

	if err := uow.TrainingSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (c *sessionService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.TrainingSessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	return uow.TrainingSessionRepository().Delete(ctx, id)
}

// QuickStart opens a session stub dated now; duration and quality get
// filled in when the climber logs the result.
func (c *sessionService) QuickStart(ctx context.Context, userId uuid.UUID, req *dto.QuickStartRequest) (*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session := entity.TrainingSession{
		Id:          uuid.New(),
		UserId:      userId,
		Date:        time.Now(),
		SessionType: req.SessionType,
		CreatedAt:   time.Now(),
	}

	if err := uow.TrainingSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return toSessionResponse(&session), nil
}

// WeeklyStats rolls sessions of the trailing weeks up into per-week
// aggregates. Weeks start Monday; empty weeks are included so the chart
// has no gaps.
func (c *sessionService) WeeklyStats(ctx context.Context, userId uuid.UUID, weeks int) ([]*dto.WeeklyStatsResponse, error) {
	if weeks <= 0 {
		weeks = 8
	}

	now := time.Now()
	currentWeekStart := startOfWeek(now)
	from := currentWeekStart.AddDate(0, 0, -7*(weeks-1))

	uow := c.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.TrainingSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByDateRange{From: from, To: now},
	)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		count      int
		minutes    int
		qualitySum float64
		qualityN   int
	}
	buckets := make(map[time.Time]*bucket, weeks)

	for _, s := range sessions {
		// Session dates may carry a different location (UTC from the driver,
		// "Z" timestamps from clients). Map keys compare locations too, so
		// normalize to the output keys' location before bucketing.
		ws := startOfWeek(s.Date.In(now.Location()))
		b, ok := buckets[ws]
		if !ok {
			b = &bucket{}
			buckets[ws] = b
		}
		b.count++
		b.minutes += s.DurationMinutes
		if s.Quality != nil {
			b.qualitySum += *s.Quality
			b.qualityN++
		}
	}

	res := make([]*dto.WeeklyStatsResponse, 0, weeks)
	for i := 0; i < weeks; i++ {
		ws := from.AddDate(0, 0, 7*i)
		stat := &dto.WeeklyStatsResponse{WeekStart: ws}
		if b, ok := buckets[ws]; ok {
			stat.SessionCount = b.count
			stat.TotalMinutes = b.minutes
			if b.qualityN > 0 {
				avg := b.qualitySum / float64(b.qualityN)
				stat.AvgQuality = &avg
			}
		}
		res = append(res, stat)
	}
	return res, nil
}

func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week started the previous Monday.
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

func (c *sessionService) HighestGrade(ctx context.Context, userId uuid.UUID, discipline string) (*dto.HighestGradeResponse, error) {
	system := grades.SystemFrench
	if discipline == "bouldering" {
		system = grades.SystemVScale
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.TrainingSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByDiscipline{Discipline: discipline},
	)
	if err != nil {
		return nil, err
	}

	raws := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if s.Grade != "" {
			raws = append(raws, s.Grade)
		}
	}

	highest, ok := grades.Highest(raws, system)
	if !ok {
		return &dto.HighestGradeResponse{Discipline: discipline}, nil
	}

	return &dto.HighestGradeResponse{
		Grade:      highest.Raw,
		Discipline: discipline,
	}, nil
}
