package service

import (
	"context"
	"errors"
	"time"

	"climb-coach-be/internal/dto"
	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/pkg/logger"
	"climb-coach-be/internal/repository/memory"
	"climb-coach-be/internal/repository/specification"
	"climb-coach-be/internal/repository/unitofwork"
	"climb-coach-be/pkg/events"
	pktNats "climb-coach-be/pkg/nats"
	"climb-coach-be/pkg/review"

	"github.com/google/uuid"
)

// ErrNoOpenDraft means the panel was never opened (or already closed) for
// this (scenario, expert) pair.
var ErrNoOpenDraft = errors.New("no open draft for this scenario")

// ErrIncompleteDraft blocks submission while a required section is empty.
var ErrIncompleteDraft = errors.New("required sections are incomplete")

type IReviewService interface {
	Open(ctx context.Context, expertId, scenarioId uuid.UUID) (*dto.OpenReviewResponse, error)
	UpdateDraft(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.UpdateDraftRequest) (*dto.DraftStateResponse, error)
	SaveDraft(ctx context.Context, expertId, scenarioId uuid.UUID) (*dto.SaveDraftResponse, error)
	Submit(ctx context.Context, expertId, scenarioId uuid.UUID) (*dto.SubmitResponse, error)
	ClosePanel(expertId, scenarioId uuid.UUID)

	AddActivity(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.AddActivityRequest) (*dto.DraftStateResponse, error)
	MoveActivity(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.MoveActivityRequest) (*dto.DraftStateResponse, error)
	RemoveActivity(ctx context.Context, expertId, scenarioId, activityId uuid.UUID) (*dto.DraftStateResponse, error)
	UpdateActivity(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.UpdateActivityRequest) (*dto.DraftStateResponse, error)
	ApplyTemplate(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.ApplyTemplateRequest) (*dto.DraftStateResponse, error)
}

type reviewService struct {
	uowFactory     unitofwork.RepositoryFactory
	drafts         *memory.DraftRepository
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewReviewService(
	uowFactory unitofwork.RepositoryFactory,
	drafts *memory.DraftRepository,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IReviewService {
	return &reviewService{
		uowFactory:     uowFactory,
		drafts:         drafts,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *reviewService) Open(ctx context.Context, expertId, scenarioId uuid.UUID) (*dto.OpenReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	scenario, err := uow.ScenarioRepository().FindOne(ctx, specification.ByID{ID: scenarioId})
	if err != nil {
		return nil, err
	}
	if scenario == nil {
		return nil, nil
	}

	// A failed prior-response lookup degrades to a fresh draft instead of
	// blocking the panel.
	prior, err := uow.ExpertResponseRepository().FindOne(ctx,
		specification.ByScenarioID{ScenarioID: scenarioId},
		specification.ByExpertID{ExpertID: expertId},
	)
	if err != nil {
		s.logger.Warn("ReviewService", "Prior response lookup failed, opening with defaults", map[string]interface{}{
			"scenario_id": scenarioId,
			"expert_id":   expertId,
			"error":       err.Error(),
		})
		prior = nil
	}

	draft := review.NewDraft(scenarioId, expertId, prior, time.Now())
	s.drafts.Save(draft)

	responseCount, err := uow.ExpertResponseRepository().Count(ctx, specification.ByScenarioID{ScenarioID: scenarioId})
	if err != nil {
		responseCount = 0
	}

	return &dto.OpenReviewResponse{
		Scenario:     *toScenarioResponse(scenario, responseCount),
		Draft:        *buildDraftState(draft),
		SessionTypes: review.SessionTypes,
		Variables:    review.Variables,
	}, nil
}

func (s *reviewService) UpdateDraft(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.UpdateDraftRequest) (*dto.DraftStateResponse, error) {
	draft, found := s.drafts.Get(scenarioId, expertId)
	if !found {
		return nil, ErrNoOpenDraft
	}

	if req.PredictedQualityOptimal != nil {
		draft.PredictedQualityOptimal = *req.PredictedQualityOptimal
	}
	if req.PredictedQualityBaseline != nil {
		draft.PredictedQualityBaseline = *req.PredictedQualityBaseline
	}
	if req.PredictionConfidence != nil {
		draft.PredictionConfidence = *req.PredictionConfidence
	}
	if req.RecommendedSessionType != nil {
		draft.RecommendedSessionType = *req.RecommendedSessionType
	}
	if req.SessionTypeConfidence != nil {
		draft.SessionTypeConfidence = *req.SessionTypeConfidence
	}
	for key, tr := range req.Treatments {
		draft.Treatments[key] = entity.TreatmentRecommendation{
			Value:      tr.Value,
			Importance: tr.Importance,
		}
	}
	if req.Counterfactuals != nil {
		if err := s.replaceCounterfactuals(ctx, draft, *req.Counterfactuals); err != nil {
			return nil, err
		}
	}
	if req.KeyDrivers != nil {
		for i := range draft.KeyDrivers {
			draft.KeyDrivers[i] = review.KeyDriverSlot{Rank: i + 1}
		}
		for _, kd := range req.KeyDrivers {
			if kd.Rank >= 1 && kd.Rank <= len(draft.KeyDrivers) {
				draft.KeyDrivers[kd.Rank-1].Variable = kd.Variable
				draft.KeyDrivers[kd.Rank-1].Direction = kd.Direction
			}
		}
	}
	if req.InteractionEffects != nil {
		draft.InteractionEffects = make([]review.InteractionEntry, 0, len(*req.InteractionEffects))
		for _, ie := range *req.InteractionEffects {
			draft.InteractionEffects = append(draft.InteractionEffects, review.InteractionEntry{
				FactorA:        ie.FactorA,
				FactorB:        ie.FactorB,
				Description:    ie.Description,
				CombinedImpact: ie.CombinedImpact,
			})
		}
	}
	if req.IncludeSessionStructure != nil {
		draft.IncludeSessionStructure = *req.IncludeSessionStructure
	}
	if req.Reasoning != nil {
		draft.Reasoning = *req.Reasoning
	}

	s.drafts.Save(draft)
	return buildDraftState(draft), nil
}

// replaceCounterfactuals swaps in the new entries, re-reading each actual
// value from the scenario's pre-session snapshot. Non-numeric or missing
// snapshot values leave the actual blank.
func (s *reviewService) replaceCounterfactuals(ctx context.Context, draft *review.Draft, patches []dto.CounterfactualPatch) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	scenario, err := uow.ScenarioRepository().FindOne(ctx, specification.ByID{ID: draft.ScenarioId})
	if err != nil {
		return err
	}

	var snapshot map[string]interface{}
	if scenario != nil {
		snapshot = scenario.PreSessionSnapshot
	}

	draft.Counterfactuals = make([]review.CounterfactualEntry, 0, len(patches))
	for _, p := range patches {
		entry := review.CounterfactualEntry{
			Variable:               p.Variable,
			HypotheticalValue:      p.HypotheticalValue,
			NewPredictedQuality:    p.NewPredictedQuality,
			WouldChangeSessionType: p.WouldChangeSessionType,
		}
		if actual, ok := review.ActualValue(snapshot, p.Variable); ok {
			entry.ActualValue = actual
		}
		draft.Counterfactuals = append(draft.Counterfactuals, entry)
	}
	return nil
}

func (s *reviewService) SaveDraft(ctx context.Context, expertId, scenarioId uuid.UUID) (*dto.SaveDraftResponse, error) {
	draft, found := s.drafts.Get(scenarioId, expertId)
	if !found {
		return nil, ErrNoOpenDraft
	}

	completion := review.ComputeCompletion(draft)
	response := review.Assemble(draft, false, time.Now())

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ExpertResponseRepository().Upsert(ctx, response); err != nil {
		return nil, err
	}

	return &dto.SaveDraftResponse{
		Saved:      true,
		IsComplete: completion.RequiredComplete,
	}, nil
}

func (s *reviewService) Submit(ctx context.Context, expertId, scenarioId uuid.UUID) (*dto.SubmitResponse, error) {
	draft, found := s.drafts.Get(scenarioId, expertId)
	if !found {
		return nil, ErrNoOpenDraft
	}

	completion := review.ComputeCompletion(draft)
	if !completion.RequiredComplete {
		return nil, ErrIncompleteDraft
	}

	response := review.Assemble(draft, true, time.Now())

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ExpertResponseRepository().Upsert(ctx, response); err != nil {
		return nil, err
	}

	res := &dto.SubmitResponse{Saved: true}

	// First submission flips a pending scenario to in_review, exactly once.
	// If anything after the upsert fails the submission still counts; the
	// client gets a warning instead of an error.
	scenario, err := uow.ScenarioRepository().FindOne(ctx, specification.ByID{ID: scenarioId})
	switch {
	case err != nil:
		s.logger.Warn("ReviewService", "Scenario fetch failed after submit", map[string]interface{}{
			"scenario_id": scenarioId,
			"error":       err.Error(),
		})
		res.Warning = "response saved, but scenario status could not be checked"
	case scenario != nil && scenario.Status == review.StatusPending:
		if err := uow.ScenarioRepository().UpdateStatus(ctx, scenarioId, review.StatusInReview); err != nil {
			s.logger.Warn("ReviewService", "Status transition failed after submit", map[string]interface{}{
				"scenario_id": scenarioId,
				"error":       err.Error(),
			})
			res.Warning = "response saved, but scenario status was not updated"
		} else {
			res.StatusUpdated = true
			s.publishEvent(ctx, events.NewScenarioStatusChanged(scenarioId, review.StatusPending, review.StatusInReview))
		}
	}

	s.publishEvent(ctx, events.NewReviewSubmitted(scenarioId, expertId, true))

	s.drafts.Delete(scenarioId, expertId)
	return res, nil
}

// ClosePanel discards the in-memory draft. Nothing touches the database,
// so cancelling is always cheap.
func (s *reviewService) ClosePanel(expertId, scenarioId uuid.UUID) {
	s.drafts.Delete(scenarioId, expertId)
}

func (s *reviewService) publishEvent(ctx context.Context, evt events.BaseEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("ReviewService", "Failed to publish event", map[string]interface{}{
			"type":  evt.EventType(),
			"error": err.Error(),
		})
	}
}

// --- Session-structure planner operations ---

func (s *reviewService) AddActivity(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.AddActivityRequest) (*dto.DraftStateResponse, error) {
	draft, found := s.drafts.Get(scenarioId, expertId)
	if !found {
		return nil, ErrNoOpenDraft
	}
	draft.AddActivity(req.Type)
	s.drafts.Save(draft)
	return buildDraftState(draft), nil
}

func (s *reviewService) MoveActivity(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.MoveActivityRequest) (*dto.DraftStateResponse, error) {
	draft, found := s.drafts.Get(scenarioId, expertId)
	if !found {
		return nil, ErrNoOpenDraft
	}
	if req.Direction == "up" {
		draft.MoveActivityUp(req.Id)
	} else {
		draft.MoveActivityDown(req.Id)
	}
	s.drafts.Save(draft)
	return buildDraftState(draft), nil
}

func (s *reviewService) RemoveActivity(ctx context.Context, expertId, scenarioId, activityId uuid.UUID) (*dto.DraftStateResponse, error) {
	draft, found := s.drafts.Get(scenarioId, expertId)
	if !found {
		return nil, ErrNoOpenDraft
	}
	draft.RemoveActivity(activityId)
	s.drafts.Save(draft)
	return buildDraftState(draft), nil
}

func (s *reviewService) UpdateActivity(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.UpdateActivityRequest) (*dto.DraftStateResponse, error) {
	draft, found := s.drafts.Get(scenarioId, expertId)
	if !found {
		return nil, ErrNoOpenDraft
	}
	draft.UpdateActivity(req.Id, req.DurationMinutes, req.Intensity, req.Notes)
	s.drafts.Save(draft)
	return buildDraftState(draft), nil
}

func (s *reviewService) ApplyTemplate(ctx context.Context, expertId, scenarioId uuid.UUID, req *dto.ApplyTemplateRequest) (*dto.DraftStateResponse, error) {
	draft, found := s.drafts.Get(scenarioId, expertId)
	if !found {
		return nil, ErrNoOpenDraft
	}
	if err := draft.ApplyTemplate(req.Template); err != nil {
		return nil, err
	}
	s.drafts.Save(draft)
	return buildDraftState(draft), nil
}

// buildDraftState projects the draft plus its freshly computed completion
// map into the wire shape.
func buildDraftState(d *review.Draft) *dto.DraftStateResponse {
	completion := review.ComputeCompletion(d)

	state := &dto.DraftStateResponse{
		ScenarioId:               d.ScenarioId,
		ExpertId:                 d.ExpertId,
		StartedAt:                d.StartedAt,
		PredictedQualityOptimal:  d.PredictedQualityOptimal,
		PredictedQualityBaseline: d.PredictedQualityBaseline,
		PredictionConfidence:     d.PredictionConfidence,
		RecommendedSessionType:   d.RecommendedSessionType,
		SessionTypeConfidence:    d.SessionTypeConfidence,
		Treatments:               make(map[string]dto.TreatmentState, len(d.Treatments)),
		Counterfactuals:          make([]dto.CounterfactualState, 0, len(d.Counterfactuals)),
		InteractionEffects:       make([]dto.InteractionState, 0, len(d.InteractionEffects)),
		IncludeSessionStructure:  d.IncludeSessionStructure,
		Activities:               make([]dto.ActivityState, 0, len(d.Activities)),
		TotalDurationMinutes:     d.TotalDuration(),
		ActivityCount:            d.ActivityCount(),
		Reasoning:                d.Reasoning,
		Completion: dto.CompletionState{
			Sections:         completion.Sections,
			RequiredComplete: completion.RequiredComplete,
		},
	}

	for key, tr := range d.Treatments {
		state.Treatments[key] = dto.TreatmentState{
			Value:      tr.Value,
			Importance: tr.Importance,
		}
	}

	for _, cf := range d.Counterfactuals {
		state.Counterfactuals = append(state.Counterfactuals, dto.CounterfactualState{
			Variable:               cf.Variable,
			ActualValue:            cf.ActualValue,
			HypotheticalValue:      cf.HypotheticalValue,
			NewPredictedQuality:    cf.NewPredictedQuality,
			ExpectedOutcomeChange:  review.FormatOutcomeChange(cf.NewPredictedQuality, d.PredictedQualityOptimal),
			WouldChangeSessionType: cf.WouldChangeSessionType,
		})
	}

	for i, slot := range d.KeyDrivers {
		state.KeyDrivers[i] = dto.KeyDriverState{
			Rank:      slot.Rank,
			Variable:  slot.Variable,
			Direction: slot.Direction,
		}
	}

	for _, ie := range d.InteractionEffects {
		state.InteractionEffects = append(state.InteractionEffects, dto.InteractionState{
			FactorA:        ie.FactorA,
			FactorB:        ie.FactorB,
			Description:    ie.Description,
			CombinedImpact: ie.CombinedImpact,
		})
	}

	for _, a := range d.Activities {
		state.Activities = append(state.Activities, dto.ActivityState{
			Id:              a.Id,
			Type:            a.Type,
			DurationMinutes: a.DurationMinutes,
			Intensity:       a.Intensity,
			Notes:           a.Notes,
		})
	}

	return state
}
