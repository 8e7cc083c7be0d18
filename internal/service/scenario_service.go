package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"climb-coach-be/internal/dto"
	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/pkg/logger"
	"climb-coach-be/internal/pkg/mailer"
	"climb-coach-be/internal/repository/specification"
	"climb-coach-be/internal/repository/unitofwork"
	"climb-coach-be/pkg/aigen"
	"climb-coach-be/pkg/events"
	pktNats "climb-coach-be/pkg/nats"
	"climb-coach-be/pkg/review"

	"github.com/google/uuid"
)

type IScenarioService interface {
	List(ctx context.Context, status, difficulty string, limit, offset int) (*dto.ListScenariosResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ScenarioResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateScenarioRequest) (*dto.CreateScenarioResponse, error)
	Resolve(ctx context.Context, req *dto.ResolveScenarioRequest) (*dto.ScenarioResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Similar(ctx context.Context, id uuid.UUID, limit int) ([]*dto.SimilarScenarioResponse, error)
	GenerateBatch(ctx context.Context, userId uuid.UUID, req *dto.GenerateScenariosRequest) (*dto.GenerateScenariosResponse, error)
	AiStatus() *dto.AiStatusResponse
}

type scenarioService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	provider         aigen.Provider
	providerKey      string
	providerModel    string
	emailService     mailer.IEmailService
	coachEmail       string
	logger           logger.ILogger
}

func NewScenarioService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	provider aigen.Provider,
	providerKey string,
	providerModel string,
	emailService mailer.IEmailService,
	coachEmail string,
	log logger.ILogger,
) IScenarioService {
	return &scenarioService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		provider:         provider,
		providerKey:      providerKey,
		providerModel:    providerModel,
		emailService:     emailService,
		coachEmail:       coachEmail,
		logger:           log,
	}
}

func toScenarioResponse(s *entity.Scenario, responseCount int64) *dto.ScenarioResponse {
	return &dto.ScenarioResponse{
		Id:                 s.Id,
		Status:             s.Status,
		DifficultyLevel:    s.DifficultyLevel,
		Description:        s.Description,
		Tags:               s.Tags,
		BaselineSnapshot:   s.BaselineSnapshot,
		PreSessionSnapshot: s.PreSessionSnapshot,
		AiRecommendation:   s.AiRecommendation,
		AiReasoning:        s.AiReasoning,
		ResponseCount:      responseCount,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func (s *scenarioService) List(ctx context.Context, status, difficulty string, limit, offset int) (*dto.ListScenariosResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	} else {
		specs = append(specs, specification.ExcludeArchived{})
	}
	if difficulty != "" {
		specs = append(specs, specification.ByDifficulty{DifficultyLevel: difficulty})
	}

	total, err := uow.ScenarioRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	scenarios, err := uow.ScenarioRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListScenariosResponse{
		Scenarios: make([]*dto.ScenarioResponse, 0, len(scenarios)),
		Total:     total,
	}
	for _, sc := range scenarios {
		count, err := uow.ExpertResponseRepository().Count(ctx, specification.ByScenarioID{ScenarioID: sc.Id})
		if err != nil {
			count = 0
		}
		res.Scenarios = append(res.Scenarios, toScenarioResponse(sc, count))
	}
	return res, nil
}

func (s *scenarioService) Show(ctx context.Context, id uuid.UUID) (*dto.ScenarioResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	scenario, err := uow.ScenarioRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if scenario == nil {
		return nil, nil
	}
	count, err := uow.ExpertResponseRepository().Count(ctx, specification.ByScenarioID{ScenarioID: id})
	if err != nil {
		count = 0
	}
	return toScenarioResponse(scenario, count), nil
}

func (s *scenarioService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateScenarioRequest) (*dto.CreateScenarioResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scenario := entity.Scenario{
		Id:                 uuid.New(),
		Status:             review.StatusPending,
		DifficultyLevel:    req.DifficultyLevel,
		Description:        req.Description,
		Tags:               req.Tags,
		BaselineSnapshot:   req.BaselineSnapshot,
		PreSessionSnapshot: req.PreSessionSnapshot,
		CreatedBy:          userId,
		CreatedAt:          time.Now(),
	}

	if err := uow.ScenarioRepository().Create(ctx, &scenario); err != nil {
		return nil, err
	}

	s.queueEmbedding(ctx, scenario.Id)

	return &dto.CreateScenarioResponse{Id: scenario.Id}, nil
}

// queueEmbedding asks the background consumer to (re)embed the scenario
// document. Embedding is auxiliary, so failures only warn.
func (s *scenarioService) queueEmbedding(ctx context.Context, scenarioId uuid.UUID) {
	payload := dto.PublishEmbedScenarioMessage{ScenarioId: scenarioId}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
		s.logger.Warn("ScenarioService", "Failed to queue scenario embedding", map[string]interface{}{
			"scenario_id": scenarioId,
			"error":       err.Error(),
		})
	}
}

func (s *scenarioService) Resolve(ctx context.Context, req *dto.ResolveScenarioRequest) (*dto.ScenarioResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scenario, err := uow.ScenarioRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if scenario == nil {
		return nil, nil
	}

	oldStatus := scenario.Status
	if err := uow.ScenarioRepository().UpdateStatus(ctx, req.Id, req.Status); err != nil {
		return nil, err
	}
	scenario.Status = req.Status

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewScenarioStatusChanged(req.Id, oldStatus, req.Status)); err != nil {
			s.logger.Warn("ScenarioService", "Failed to publish status event", map[string]interface{}{"error": err.Error()})
		}
	}

	// A dispute means the experts disagreed; the coach gets an email so a
	// discussion round can be scheduled.
	if req.Status == review.StatusDisputed && s.coachEmail != "" {
		title := scenario.Description
		if len(title) > 60 {
			title = title[:60] + "..."
		}
		if err := s.emailService.SendDisputeAlert(s.coachEmail, title); err != nil {
			s.logger.Warn("ScenarioService", "Failed to send dispute alert", map[string]interface{}{"error": err.Error()})
		}
	}

	count, err := uow.ExpertResponseRepository().Count(ctx, specification.ByScenarioID{ScenarioID: req.Id})
	if err != nil {
		count = 0
	}
	return toScenarioResponse(scenario, count), nil
}

func (s *scenarioService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scenario, err := uow.ScenarioRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if scenario == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ScenarioRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.ScenarioEmbeddingRepository().DeleteByScenarioId(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *scenarioService) Similar(ctx context.Context, id uuid.UUID, limit int) ([]*dto.SimilarScenarioResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	source, err := uow.ScenarioEmbeddingRepository().FindByScenarioId(ctx, id)
	if err != nil {
		return nil, err
	}
	if source == nil {
		// Not embedded yet; an empty result is more useful than an error.
		return []*dto.SimilarScenarioResponse{}, nil
	}

	neighbors, err := uow.ScenarioEmbeddingRepository().SearchSimilar(ctx, source.EmbeddingValue, limit, id)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SimilarScenarioResponse, 0, len(neighbors))
	for _, n := range neighbors {
		scenario, err := uow.ScenarioRepository().FindOne(ctx, specification.ByID{ID: n.ScenarioId})
		if err != nil || scenario == nil {
			continue
		}
		res = append(res, &dto.SimilarScenarioResponse{
			Id:              scenario.Id,
			Description:     scenario.Description,
			DifficultyLevel: scenario.DifficultyLevel,
			Status:          scenario.Status,
		})
	}
	return res, nil
}

func (s *scenarioService) GenerateBatch(ctx context.Context, userId uuid.UUID, req *dto.GenerateScenariosRequest) (*dto.GenerateScenariosResponse, error) {
	generated, err := s.provider.GenerateScenarios(ctx, req.Count)
	if err != nil {
		return nil, fmt.Errorf("scenario generation failed: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	res := &dto.GenerateScenariosResponse{Ids: make([]uuid.UUID, 0, len(generated))}

	for _, g := range generated {
		difficulty := g.Difficulty
		if difficulty != review.DifficultyCommon && difficulty != review.DifficultyEdgeCase && difficulty != review.DifficultyExtreme {
			difficulty = review.DifficultyCommon
		}

		description := g.Description
		if g.Title != "" {
			description = g.Title + ": " + g.Description
		}

		recommendation := g.Recommendation
		reasoning := g.Reasoning

		scenario := entity.Scenario{
			Id:                 uuid.New(),
			Status:             review.StatusPending,
			DifficultyLevel:    difficulty,
			Description:        description,
			Tags:               g.Tags,
			PreSessionSnapshot: g.Snapshot,
			AiRecommendation:   &recommendation,
			AiReasoning:        &reasoning,
			CreatedBy:          userId,
			CreatedAt:          time.Now(),
		}

		if err := uow.ScenarioRepository().Create(ctx, &scenario); err != nil {
			s.logger.Error("ScenarioService", "Failed to persist generated scenario", map[string]interface{}{"error": err.Error()})
			continue
		}

		s.queueEmbedding(ctx, scenario.Id)
		res.Ids = append(res.Ids, scenario.Id)
	}

	res.Created = len(res.Ids)
	return res, nil
}

func (s *scenarioService) AiStatus() *dto.AiStatusResponse {
	status := aigen.Status{
		Configured: s.provider != nil && (s.providerKey != "" || strings.EqualFold(s.provider.Name(), "ollama")),
		Model:      s.providerModel,
		MaskedKey:  aigen.MaskKey(s.providerKey),
	}
	if s.provider != nil {
		status.Provider = s.provider.Name()
	}
	return &dto.AiStatusResponse{
		Configured: status.Configured,
		Provider:   status.Provider,
		Model:      status.Model,
		MaskedKey:  status.MaskedKey,
	}
}
