package review

import (
	"climb-coach-be/internal/entity"

	"github.com/google/uuid"
)

// Session-structure planner: ordered-activity list operations for the
// optional section 7. Ids are assigned at creation and never reused.

// AddActivity appends a new activity with type-specific smart defaults and
// returns its id.
func (d *Draft) AddActivity(activityType string) uuid.UUID {
	duration, intensity := activityDefaults(activityType)
	act := entity.SessionActivity{
		Id:              uuid.New(),
		Type:            activityType,
		DurationMinutes: duration,
		Intensity:       intensity,
	}
	d.Activities = append(d.Activities, act)
	return act.Id
}

func activityDefaults(activityType string) (int, string) {
	switch activityType {
	case ActivityWarmUp:
		return 15, IntensityLight
	case ActivityCooldown, ActivityStretching:
		return 10, IntensityVeryLight
	default:
		return 30, IntensityModerate
	}
}

// MoveActivityUp swaps the activity with its predecessor. No-op at the top
// boundary and for unknown ids.
func (d *Draft) MoveActivityUp(id uuid.UUID) {
	for i := range d.Activities {
		if d.Activities[i].Id == id {
			if i > 0 {
				d.Activities[i-1], d.Activities[i] = d.Activities[i], d.Activities[i-1]
			}
			return
		}
	}
}

// MoveActivityDown swaps the activity with its successor. No-op at the bottom
// boundary and for unknown ids.
func (d *Draft) MoveActivityDown(id uuid.UUID) {
	for i := range d.Activities {
		if d.Activities[i].Id == id {
			if i < len(d.Activities)-1 {
				d.Activities[i], d.Activities[i+1] = d.Activities[i+1], d.Activities[i]
			}
			return
		}
	}
}

// RemoveActivity deletes by id. Unknown ids are a no-op.
func (d *Draft) RemoveActivity(id uuid.UUID) {
	for i := range d.Activities {
		if d.Activities[i].Id == id {
			d.Activities = append(d.Activities[:i], d.Activities[i+1:]...)
			return
		}
	}
}

// UpdateActivity replaces the duration/intensity/notes of an activity in
// place; the id and position are preserved.
func (d *Draft) UpdateActivity(id uuid.UUID, durationMinutes int, intensity, notes string) {
	for i := range d.Activities {
		if d.Activities[i].Id == id {
			d.Activities[i].DurationMinutes = durationMinutes
			d.Activities[i].Intensity = intensity
			if d.Activities[i].Type == ActivityCustom {
				d.Activities[i].Notes = notes
			}
			return
		}
	}
}

// TotalDuration sums all activity durations. Derived on every read, never
// cached.
func (d *Draft) TotalDuration() int {
	total := 0
	for _, a := range d.Activities {
		total += a.DurationMinutes
	}
	return total
}

// ActivityCount returns the list length.
func (d *Draft) ActivityCount() int {
	return len(d.Activities)
}
