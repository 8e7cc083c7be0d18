package memory

import (
	"testing"
	"time"

	"climb-coach-be/pkg/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftRepository_RoundTrip(t *testing.T) {
	repo := NewDraftRepository()
	scenarioId := uuid.New()
	expertId := uuid.New()

	_, found := repo.Get(scenarioId, expertId)
	assert.False(t, found)

	draft := review.NewDraft(scenarioId, expertId, nil, time.Now())
	repo.Save(draft)

	got, found := repo.Get(scenarioId, expertId)
	require.True(t, found)
	assert.Same(t, draft, got)

	repo.Delete(scenarioId, expertId)
	_, found = repo.Get(scenarioId, expertId)
	assert.False(t, found)
}

func TestDraftRepository_KeyedPerExpert(t *testing.T) {
	repo := NewDraftRepository()
	scenarioId := uuid.New()
	expertA := uuid.New()
	expertB := uuid.New()

	draftA := review.NewDraft(scenarioId, expertA, nil, time.Now())
	draftB := review.NewDraft(scenarioId, expertB, nil, time.Now())
	repo.Save(draftA)
	repo.Save(draftB)

	gotA, found := repo.Get(scenarioId, expertA)
	require.True(t, found)
	gotB, found := repo.Get(scenarioId, expertB)
	require.True(t, found)
	assert.NotSame(t, gotA, gotB)

	// Deleting one expert's draft leaves the other untouched.
	repo.Delete(scenarioId, expertA)
	_, found = repo.Get(scenarioId, expertA)
	assert.False(t, found)
	_, found = repo.Get(scenarioId, expertB)
	assert.True(t, found)
}
