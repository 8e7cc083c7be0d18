package review

import (
	"fmt"

	"climb-coach-be/internal/entity"

	"github.com/google/uuid"
)

// Planner template names. These match the shared quick-template expectations
// of the dashboard UI; the literal sequences below are configuration data.
const (
	TemplateProject  = "project"
	TemplateVolume   = "volume"
	TemplateTraining = "training"
	TemplateRecovery = "recovery"
	TemplateClearAll = "clear_all"
)

type templateActivity struct {
	Type            string
	DurationMinutes int
	Intensity       string
}

var plannerTemplates = map[string][]templateActivity{
	TemplateProject: {
		{ActivityWarmUp, 20, IntensityLight},
		{ActivityLimitBouldering, 60, IntensityMax},
		{ActivityStretching, 10, IntensityVeryLight},
	},
	TemplateVolume: {
		{ActivityWarmUp, 15, IntensityLight},
		{ActivityVolumeClimbing, 75, IntensityModerate},
		{ActivityCooldown, 10, IntensityVeryLight},
	},
	TemplateTraining: {
		{ActivityWarmUp, 15, IntensityLight},
		{ActivityHangboard, 30, IntensityHard},
		{ActivityCore, 20, IntensityModerate},
		{ActivityStretching, 10, IntensityVeryLight},
	},
	TemplateRecovery: {
		{ActivityWarmUp, 10, IntensityVeryLight},
		{ActivityTechniqueDrills, 30, IntensityLight},
		{ActivityStretching, 15, IntensityVeryLight},
	},
	TemplateClearAll: {},
}

// ApplyTemplate replaces the entire activity list atomically with the named
// preset. Unknown template names leave the list untouched.
func (d *Draft) ApplyTemplate(name string) error {
	seq, ok := plannerTemplates[name]
	if !ok {
		return fmt.Errorf("unknown planner template %q", name)
	}
	activities := make([]entity.SessionActivity, 0, len(seq))
	for _, t := range seq {
		activities = append(activities, entity.SessionActivity{
			Id:              uuid.New(),
			Type:            t.Type,
			DurationMinutes: t.DurationMinutes,
			Intensity:       t.Intensity,
		})
	}
	d.Activities = activities
	return nil
}
