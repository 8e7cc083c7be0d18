package memory

import (
	"fmt"
	"time"

	"climb-coach-be/pkg/review"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// DraftRepository holds in-flight review panel drafts. Drafts live in
// process memory only, so cancelling a panel is just a cache delete and
// an abandoned panel expires on its own.
type DraftRepository struct {
	cache *cache.Cache
}

func NewDraftRepository() *DraftRepository {
	// Drafts expire after 24 hours of inactivity, purged every hour.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &DraftRepository{
		cache: c,
	}
}

func draftKey(scenarioId, expertId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", scenarioId, expertId)
}

func (r *DraftRepository) Save(draft *review.Draft) {
	r.cache.Set(draftKey(draft.ScenarioId, draft.ExpertId), draft, cache.DefaultExpiration)
}

func (r *DraftRepository) Get(scenarioId, expertId uuid.UUID) (*review.Draft, bool) {
	if x, found := r.cache.Get(draftKey(scenarioId, expertId)); found {
		return x.(*review.Draft), true
	}
	return nil, false
}

func (r *DraftRepository) Delete(scenarioId, expertId uuid.UUID) {
	r.cache.Delete(draftKey(scenarioId, expertId))
}
