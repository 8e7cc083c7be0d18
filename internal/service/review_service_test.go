package service

import (
	"context"
	"errors"
	"testing"

	"climb-coach-be/internal/dto"
	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/repository/contract"
	"climb-coach-be/internal/repository/memory"
	"climb-coach-be/internal/repository/specification"
	"climb-coach-be/internal/repository/unitofwork"
	"climb-coach-be/pkg/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type fakeScenarioRepo struct {
	scenario     *entity.Scenario
	findErr      error
	updateErr    error
	statusCalls  []string
	updateStatus func(id uuid.UUID, status string)
}

func (r *fakeScenarioRepo) Create(ctx context.Context, s *entity.Scenario) error { return nil }
func (r *fakeScenarioRepo) Update(ctx context.Context, s *entity.Scenario) error { return nil }
func (r *fakeScenarioRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.statusCalls = append(r.statusCalls, status)
	if r.scenario != nil {
		r.scenario.Status = status
	}
	if r.updateStatus != nil {
		r.updateStatus(id, status)
	}
	return nil
}
func (r *fakeScenarioRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeScenarioRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Scenario, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.scenario, nil
}
func (r *fakeScenarioRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scenario, error) {
	if r.scenario == nil {
		return nil, nil
	}
	return []*entity.Scenario{r.scenario}, nil
}
func (r *fakeScenarioRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeResponseRepo struct {
	prior     *entity.ExpertResponse
	store     map[string]*entity.ExpertResponse
	upsertErr error
	findErr   error
}

// Upsert mirrors the real repository's (scenario_id, expert_id) conflict
// target: the second write for a pair replaces the first.
func (r *fakeResponseRepo) Upsert(ctx context.Context, response *entity.ExpertResponse) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	if r.store == nil {
		r.store = make(map[string]*entity.ExpertResponse)
	}
	key := response.ScenarioId.String() + ":" + response.ExpertId.String()
	r.store[key] = response
	return nil
}

// saved returns every stored response, one per (scenario, expert) pair.
func (r *fakeResponseRepo) saved() []*entity.ExpertResponse {
	out := make([]*entity.ExpertResponse, 0, len(r.store))
	for _, resp := range r.store {
		out = append(out, resp)
	}
	return out
}
func (r *fakeResponseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ExpertResponse, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.prior, nil
}
func (r *fakeResponseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ExpertResponse, error) {
	return nil, nil
}
func (r *fakeResponseRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store)), nil
}

type fakeUow struct {
	scenarios *fakeScenarioRepo
	responses *fakeResponseRepo
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }
func (u *fakeUow) ScenarioRepository() contract.ScenarioRepository {
	return u.scenarios
}
func (u *fakeUow) ExpertResponseRepository() contract.ExpertResponseRepository {
	return u.responses
}
func (u *fakeUow) ScenarioEmbeddingRepository() contract.ScenarioEmbeddingRepository { return nil }
func (u *fakeUow) TrainingSessionRepository() contract.TrainingSessionRepository     { return nil }
func (u *fakeUow) NotificationRepository() contract.NotificationRepository           { return nil }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// --- helpers ---

func newTestScenario() *entity.Scenario {
	return &entity.Scenario{
		Id:              uuid.New(),
		Status:          review.StatusPending,
		DifficultyLevel: review.DifficultyCommon,
		Description:     "tired climber, short sleep",
		PreSessionSnapshot: map[string]interface{}{
			"sleep_hours": 6.5,
		},
	}
}

func newTestService(t *testing.T, scenario *entity.Scenario) (IReviewService, *fakeUow) {
	t.Helper()
	uow := &fakeUow{
		scenarios: &fakeScenarioRepo{scenario: scenario},
		responses: &fakeResponseRepo{},
	}
	svc := NewReviewService(&fakeFactory{uow: uow}, memory.NewDraftRepository(), nil, noopLogger{})
	return svc, uow
}

func openPanel(t *testing.T, svc IReviewService, expertId uuid.UUID, scenarioId uuid.UUID) {
	t.Helper()
	res, err := svc.Open(context.Background(), expertId, scenarioId)
	require.NoError(t, err)
	require.NotNil(t, res)
}

// fillRequired edits the draft until sections 1, 2, 5 and 8 are complete.
func fillRequired(t *testing.T, svc IReviewService, expertId, scenarioId uuid.UUID) {
	t.Helper()
	optimal := 8.5
	sessionType := review.SessionTypes[0]
	reasoning := "fatigue dominates everything else here"
	state, err := svc.UpdateDraft(context.Background(), expertId, scenarioId, &dto.UpdateDraftRequest{
		PredictedQualityOptimal: &optimal,
		RecommendedSessionType:  &sessionType,
		KeyDrivers:              []dto.KeyDriverState{{Rank: 1, Variable: "sleep_hours", Direction: "negative"}},
		Reasoning:               &reasoning,
	})
	require.NoError(t, err)
	require.True(t, state.Completion.RequiredComplete)
}

// --- tests ---

func TestOpen_ScenarioNotFound(t *testing.T) {
	svc, _ := newTestService(t, nil)

	res, err := svc.Open(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestOpen_FreshDraftDefaults(t *testing.T) {
	scenario := newTestScenario()
	svc, _ := newTestService(t, scenario)

	res, err := svc.Open(context.Background(), uuid.New(), scenario.Id)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, scenario.Id, res.Scenario.Id)
	assert.Equal(t, review.QualityDefault, res.Draft.PredictedQualityOptimal)
	assert.Equal(t, review.ConfidenceMedium, res.Draft.PredictionConfidence)
	assert.False(t, res.Draft.Completion.RequiredComplete)
	assert.NotEmpty(t, res.SessionTypes)
	assert.NotEmpty(t, res.Variables)
}

func TestOpen_PriorResponseLookupFailureDegradesToDefaults(t *testing.T) {
	scenario := newTestScenario()
	svc, uow := newTestService(t, scenario)
	uow.responses.findErr = errors.New("db down")

	res, err := svc.Open(context.Background(), uuid.New(), scenario.Id)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, review.QualityDefault, res.Draft.PredictedQualityOptimal)
}

func TestOpen_SeedsFromPriorResponse(t *testing.T) {
	scenario := newTestScenario()
	svc, uow := newTestService(t, scenario)
	uow.responses.prior = &entity.ExpertResponse{
		ScenarioId:              scenario.Id,
		PredictedQualityOptimal: 9,
		RecommendedSessionType:  review.SessionTypes[0],
		Reasoning:               "seeded from last time",
	}

	res, err := svc.Open(context.Background(), uuid.New(), scenario.Id)
	require.NoError(t, err)
	assert.Equal(t, 9.0, res.Draft.PredictedQualityOptimal)
	assert.Equal(t, "seeded from last time", res.Draft.Reasoning)
}

func TestUpdateDraft_NoOpenDraft(t *testing.T) {
	svc, _ := newTestService(t, newTestScenario())

	_, err := svc.UpdateDraft(context.Background(), uuid.New(), uuid.New(), &dto.UpdateDraftRequest{})
	assert.ErrorIs(t, err, ErrNoOpenDraft)
}

func TestUpdateDraft_CounterfactualReadsActualFromSnapshot(t *testing.T) {
	scenario := newTestScenario()
	svc, _ := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)

	patches := []dto.CounterfactualPatch{
		{Variable: "sleep_hours", HypotheticalValue: "8", NewPredictedQuality: 7.5},
		{Variable: "unknown_var", HypotheticalValue: "3", NewPredictedQuality: 5},
	}
	state, err := svc.UpdateDraft(context.Background(), expertId, scenario.Id, &dto.UpdateDraftRequest{
		Counterfactuals: &patches,
	})
	require.NoError(t, err)
	require.Len(t, state.Counterfactuals, 2)
	assert.Equal(t, "6.5", state.Counterfactuals[0].ActualValue)
	assert.Empty(t, state.Counterfactuals[1].ActualValue)
}

func TestSaveDraft_PartialDraftIsSaved(t *testing.T) {
	scenario := newTestScenario()
	svc, uow := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)

	res, err := svc.SaveDraft(context.Background(), expertId, scenario.Id)
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.False(t, res.IsComplete)

	require.Len(t, uow.responses.saved(), 1)
	assert.False(t, uow.responses.saved()[0].IsComplete)

	// Saving does not close the panel.
	_, err = svc.SaveDraft(context.Background(), expertId, scenario.Id)
	assert.NoError(t, err)
}

func TestSaveDraft_SecondSaveOverwrites(t *testing.T) {
	scenario := newTestScenario()
	svc, uow := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)

	first := "first pass, still thinking"
	_, err := svc.UpdateDraft(context.Background(), expertId, scenario.Id, &dto.UpdateDraftRequest{
		Reasoning: &first,
	})
	require.NoError(t, err)
	_, err = svc.SaveDraft(context.Background(), expertId, scenario.Id)
	require.NoError(t, err)

	second := "changed my mind, fatigue is the real driver"
	optimal := 7.0
	_, err = svc.UpdateDraft(context.Background(), expertId, scenario.Id, &dto.UpdateDraftRequest{
		Reasoning:               &second,
		PredictedQualityOptimal: &optimal,
	})
	require.NoError(t, err)
	_, err = svc.SaveDraft(context.Background(), expertId, scenario.Id)
	require.NoError(t, err)

	// Exactly one persisted response per (scenario, expert); the later save
	// replaced the earlier one.
	stored := uow.responses.saved()
	require.Len(t, stored, 1)
	assert.Equal(t, scenario.Id, stored[0].ScenarioId)
	assert.Equal(t, expertId, stored[0].ExpertId)
	assert.Equal(t, second, stored[0].Reasoning)
	assert.Equal(t, 7.0, stored[0].PredictedQualityOptimal)
}

func TestSubmit_IncompleteDraftBlocksPersistence(t *testing.T) {
	scenario := newTestScenario()
	svc, uow := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)

	_, err := svc.Submit(context.Background(), expertId, scenario.Id)
	assert.ErrorIs(t, err, ErrIncompleteDraft)
	assert.Empty(t, uow.responses.saved())
	assert.Empty(t, uow.scenarios.statusCalls)
}

func TestSubmit_FlipsPendingScenarioOnce(t *testing.T) {
	scenario := newTestScenario()
	svc, uow := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)
	fillRequired(t, svc, expertId, scenario.Id)

	res, err := svc.Submit(context.Background(), expertId, scenario.Id)
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.True(t, res.StatusUpdated)
	assert.Empty(t, res.Warning)
	assert.Equal(t, []string{review.StatusInReview}, uow.scenarios.statusCalls)

	require.Len(t, uow.responses.saved(), 1)
	assert.True(t, uow.responses.saved()[0].IsComplete)

	// The draft is gone after a successful submit.
	_, err = svc.Submit(context.Background(), expertId, scenario.Id)
	assert.ErrorIs(t, err, ErrNoOpenDraft)

	// A second expert's submit sees in_review and leaves the status alone.
	other := uuid.New()
	openPanel(t, svc, other, scenario.Id)
	fillRequired(t, svc, other, scenario.Id)
	res, err = svc.Submit(context.Background(), other, scenario.Id)
	require.NoError(t, err)
	assert.False(t, res.StatusUpdated)
	assert.Equal(t, []string{review.StatusInReview}, uow.scenarios.statusCalls)
}

func TestSubmit_ScenarioFetchFailureWarnsButSaves(t *testing.T) {
	scenario := newTestScenario()
	svc, uow := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)
	fillRequired(t, svc, expertId, scenario.Id)

	uow.scenarios.findErr = errors.New("db down")

	res, err := svc.Submit(context.Background(), expertId, scenario.Id)
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.False(t, res.StatusUpdated)
	assert.NotEmpty(t, res.Warning)
	assert.Len(t, uow.responses.saved(), 1)
}

func TestSubmit_StatusUpdateFailureWarnsButSaves(t *testing.T) {
	scenario := newTestScenario()
	svc, uow := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)
	fillRequired(t, svc, expertId, scenario.Id)

	uow.scenarios.updateErr = errors.New("lock timeout")

	res, err := svc.Submit(context.Background(), expertId, scenario.Id)
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.False(t, res.StatusUpdated)
	assert.NotEmpty(t, res.Warning)
}

func TestClosePanel_DiscardsWithoutPersisting(t *testing.T) {
	scenario := newTestScenario()
	svc, uow := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)

	svc.ClosePanel(expertId, scenario.Id)

	_, err := svc.SaveDraft(context.Background(), expertId, scenario.Id)
	assert.ErrorIs(t, err, ErrNoOpenDraft)
	assert.Empty(t, uow.responses.saved())
}

func TestActivities_PlannerRoundTrip(t *testing.T) {
	scenario := newTestScenario()
	svc, _ := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)

	state, err := svc.AddActivity(context.Background(), expertId, scenario.Id, &dto.AddActivityRequest{Type: review.ActivityWarmUp})
	require.NoError(t, err)
	require.Len(t, state.Activities, 1)

	state, err = svc.AddActivity(context.Background(), expertId, scenario.Id, &dto.AddActivityRequest{Type: review.ActivityClimbing})
	require.NoError(t, err)
	require.Len(t, state.Activities, 2)

	second := state.Activities[1].Id
	state, err = svc.MoveActivity(context.Background(), expertId, scenario.Id, &dto.MoveActivityRequest{Id: second, Direction: "up"})
	require.NoError(t, err)
	assert.Equal(t, second, state.Activities[0].Id)

	state, err = svc.UpdateActivity(context.Background(), expertId, scenario.Id, &dto.UpdateActivityRequest{
		Id:              second,
		DurationMinutes: 45,
		Intensity:       review.IntensityHard,
	})
	require.NoError(t, err)
	assert.Equal(t, 45, state.Activities[0].DurationMinutes)

	state, err = svc.RemoveActivity(context.Background(), expertId, scenario.Id, second)
	require.NoError(t, err)
	assert.Len(t, state.Activities, 1)
}

func TestApplyTemplate_ReplacesActivities(t *testing.T) {
	scenario := newTestScenario()
	svc, _ := newTestService(t, scenario)
	expertId := uuid.New()
	openPanel(t, svc, expertId, scenario.Id)

	_, err := svc.AddActivity(context.Background(), expertId, scenario.Id, &dto.AddActivityRequest{Type: review.ActivityCustom})
	require.NoError(t, err)

	state, err := svc.ApplyTemplate(context.Background(), expertId, scenario.Id, &dto.ApplyTemplateRequest{Template: review.TemplateProject})
	require.NoError(t, err)
	assert.Greater(t, len(state.Activities), 1)

	_, err = svc.ApplyTemplate(context.Background(), expertId, scenario.Id, &dto.ApplyTemplateRequest{Template: "bogus"})
	assert.Error(t, err)
}
