package main

import (
	"encoding/json"
	"log"
	"os"

	"climb-coach-be/internal/model"
	"climb-coach-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

type seedScenario struct {
	difficulty  string
	description string
	tags        []string
	baseline    map[string]interface{}
	snapshot    map[string]interface{}
}

var seedScenarios = []seedScenario{
	{
		difficulty:  "common",
		description: "Climber slept 7.5 hours, moderate finger soreness after a board session two days ago. Planning a limit bouldering session.",
		tags:        []string{"bouldering", "recovery"},
		baseline:    map[string]interface{}{"sleep_hours": 8.0, "days_since_last_session": 3, "finger_soreness": 1, "stress_level": 2},
		snapshot:    map[string]interface{}{"sleep_hours": 7.5, "days_since_last_session": 2, "finger_soreness": 3, "stress_level": 2},
	},
	{
		difficulty:  "edge_case",
		description: "High life stress week, sleep down to 5 hours, but climber feels physically fresh after 4 rest days and wants to attempt a project.",
		tags:        []string{"stress", "projecting"},
		baseline:    map[string]interface{}{"sleep_hours": 8.0, "days_since_last_session": 3, "finger_soreness": 1, "stress_level": 2},
		snapshot:    map[string]interface{}{"sleep_hours": 5.0, "days_since_last_session": 4, "finger_soreness": 1, "stress_level": 5},
	},
	{
		difficulty:  "extreme",
		description: "Back-to-back competition weekends. Elevated resting heart rate, finger soreness 4/5, and the climber insists on training power endurance.",
		tags:        []string{"competition", "overtraining", "fingers"},
		baseline:    map[string]interface{}{"sleep_hours": 8.0, "days_since_last_session": 3, "finger_soreness": 1, "stress_level": 2},
		snapshot:    map[string]interface{}{"sleep_hours": 6.0, "days_since_last_session": 1, "finger_soreness": 4, "stress_level": 4},
	},
	{
		difficulty:  "common",
		description: "Well rested climber returning from a deload week. All recovery markers at or above baseline, ready for a volume session.",
		tags:        []string{"deload", "volume"},
		baseline:    map[string]interface{}{"sleep_hours": 8.0, "days_since_last_session": 3, "finger_soreness": 1, "stress_level": 2},
		snapshot:    map[string]interface{}{"sleep_hours": 8.5, "days_since_last_session": 7, "finger_soreness": 0, "stress_level": 1},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding review scenarios...")

	created := 0
	for _, s := range seedScenarios {
		// Description doubles as the dedupe key so reruns stay idempotent.
		var existing model.Scenario
		if err := db.Where("description = ?", s.description).First(&existing).Error; err == nil {
			color.Yellow("Scenario already exists, skipping: %.60s...", s.description)
			continue
		}

		tags, _ := json.Marshal(s.tags)
		baseline, _ := json.Marshal(s.baseline)
		snapshot, _ := json.Marshal(s.snapshot)

		scenario := model.Scenario{
			Status:             "pending",
			DifficultyLevel:    s.difficulty,
			Description:        s.description,
			Tags:               tags,
			BaselineSnapshot:   baseline,
			PreSessionSnapshot: snapshot,
		}

		if err := db.Create(&scenario).Error; err != nil {
			color.Red("Error creating scenario: %v", err)
			continue
		}
		created++
		color.Green("Created %s scenario %s", s.difficulty, scenario.Id)
	}

	color.Cyan("Done. %d scenario(s) created.", created)
}
