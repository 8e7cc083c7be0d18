package review

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddActivity_SmartDefaults(t *testing.T) {
	tests := []struct {
		activityType  string
		wantDuration  int
		wantIntensity string
	}{
		{ActivityWarmUp, 15, IntensityLight},
		{ActivityCooldown, 10, IntensityVeryLight},
		{ActivityStretching, 10, IntensityVeryLight},
		{ActivityHangboard, 30, IntensityModerate},
		{ActivityLimitBouldering, 30, IntensityModerate},
		{ActivityCustom, 30, IntensityModerate},
	}
	for _, tt := range tests {
		t.Run(tt.activityType, func(t *testing.T) {
			d := newTestDraft()
			d.AddActivity(tt.activityType)
			require.Len(t, d.Activities, 1)
			assert.Equal(t, tt.wantDuration, d.Activities[0].DurationMinutes)
			assert.Equal(t, tt.wantIntensity, d.Activities[0].Intensity)
			assert.NotEqual(t, uuid.Nil, d.Activities[0].Id)
		})
	}
}

func TestAddActivity_UniqueIds(t *testing.T) {
	d := newTestDraft()
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 10; i++ {
		id := d.AddActivity(ActivityClimbing)
		assert.False(t, seen[id], "activity id reused")
		seen[id] = true
	}
}

func TestMoveActivity_BoundariesAreNoOps(t *testing.T) {
	d := newTestDraft()
	first := d.AddActivity(ActivityWarmUp)
	middle := d.AddActivity(ActivityClimbing)
	last := d.AddActivity(ActivityCooldown)

	order := func() []uuid.UUID {
		ids := make([]uuid.UUID, len(d.Activities))
		for i, a := range d.Activities {
			ids[i] = a.Id
		}
		return ids
	}

	before := order()
	d.MoveActivityUp(first)
	assert.Equal(t, before, order(), "moving first up must not change the list")
	d.MoveActivityDown(last)
	assert.Equal(t, before, order(), "moving last down must not change the list")

	d.MoveActivityUp(middle)
	assert.Equal(t, []uuid.UUID{middle, first, last}, order())
	d.MoveActivityDown(middle)
	assert.Equal(t, before, order())

	// Unknown id: no-op, no panic.
	d.MoveActivityUp(uuid.New())
	d.MoveActivityDown(uuid.New())
	assert.Equal(t, before, order())
}

func TestRemoveActivity(t *testing.T) {
	d := newTestDraft()
	a := d.AddActivity(ActivityWarmUp)
	b := d.AddActivity(ActivityClimbing)
	c := d.AddActivity(ActivityCooldown)

	d.RemoveActivity(b)
	require.Len(t, d.Activities, 2)
	assert.Equal(t, a, d.Activities[0].Id)
	assert.Equal(t, c, d.Activities[1].Id)

	d.RemoveActivity(uuid.New()) // unknown id
	assert.Len(t, d.Activities, 2)
}

func TestAggregates_DerivedOnEveryRead(t *testing.T) {
	d := newTestDraft()
	a := d.AddActivity(ActivityWarmUp) // 15
	d.AddActivity(ActivityClimbing)    // 30
	d.UpdateActivity(a, 15, IntensityLight, "")

	d.Activities[0].DurationMinutes = 15
	d.Activities[1].DurationMinutes = 60
	d.AddActivity(ActivityCooldown) // 10

	assert.Equal(t, 85, d.TotalDuration())
	assert.Equal(t, 3, d.ActivityCount())

	d.Activities[1].DurationMinutes = 45
	assert.Equal(t, 70, d.TotalDuration(), "totals must never be stale")
}

func TestApplyTemplate(t *testing.T) {
	d := newTestDraft()
	d.AddActivity(ActivityCustom)
	oldId := d.Activities[0].Id

	require.NoError(t, d.ApplyTemplate(TemplateTraining))
	require.Len(t, d.Activities, 4)
	assert.Equal(t, ActivityWarmUp, d.Activities[0].Type)
	assert.Equal(t, ActivityHangboard, d.Activities[1].Type)
	assert.Equal(t, ActivityCore, d.Activities[2].Type)
	assert.Equal(t, ActivityStretching, d.Activities[3].Type)
	for _, a := range d.Activities {
		assert.NotEqual(t, oldId, a.Id, "templates replace, never reuse ids")
	}

	require.NoError(t, d.ApplyTemplate(TemplateClearAll))
	assert.Empty(t, d.Activities)
	assert.Equal(t, 0, d.TotalDuration())

	assert.Error(t, d.ApplyTemplate("bogus"))
}

func TestUpdateActivity_NotesOnlyForCustom(t *testing.T) {
	d := newTestDraft()
	custom := d.AddActivity(ActivityCustom)
	plain := d.AddActivity(ActivityClimbing)

	d.UpdateActivity(custom, 25, IntensityHard, "one-arm hangs")
	d.UpdateActivity(plain, 40, IntensityHard, "should be ignored")

	assert.Equal(t, "one-arm hangs", d.Activities[0].Notes)
	assert.Empty(t, d.Activities[1].Notes)
	assert.Equal(t, 40, d.Activities[1].DurationMinutes)
}
