package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"climb-coach-be/internal/dto"
	"climb-coach-be/internal/entity"
	"climb-coach-be/internal/repository/specification"
	"climb-coach-be/internal/repository/unitofwork"
	"climb-coach-be/pkg/aigen"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	provider   aigen.Provider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	provider aigen.Provider,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		provider:   provider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedScenarioMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing scenario embedding for ScenarioId: %s", payload.ScenarioId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	scenario, err := uow.ScenarioRepository().FindOne(ctx, specification.ByID{ID: payload.ScenarioId})
	if err != nil {
		log.Printf("[ERROR] Failed to get scenario %s: %v", payload.ScenarioId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if scenario == nil {
		// Deleted before we got to it.
		log.Printf("[WARN] Scenario not found: %s", payload.ScenarioId)
		msg.Ack()
		return
	}

	document := buildScenarioDocument(scenario)

	values, err := cs.provider.Embed(document)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for scenario %s: %v", payload.ScenarioId, err)
		msg.Nack()
		return
	}

	embedding := entity.ScenarioEmbedding{
		Id:             uuid.New(),
		ScenarioId:     scenario.Id,
		Document:       document,
		EmbeddingValue: values,
		CreatedAt:      time.Now(),
	}

	if err := uow.ScenarioEmbeddingRepository().Upsert(ctx, &embedding); err != nil {
		log.Printf("[ERROR] Failed to upsert embedding: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Scenario embedded: %s", payload.ScenarioId)
	msg.Ack()
}

// buildScenarioDocument flattens the scenario into the text that gets
// embedded. Snapshot keys are sorted so the same scenario always produces
// the same document.
func buildScenarioDocument(scenario *entity.Scenario) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Difficulty: %s\n", scenario.DifficultyLevel)
	fmt.Fprintf(&b, "Description: %s\n", scenario.Description)
	if len(scenario.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(scenario.Tags, ", "))
	}

	keys := make([]string, 0, len(scenario.PreSessionSnapshot))
	for k := range scenario.PreSessionSnapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, scenario.PreSessionSnapshot[k])
	}

	return b.String()
}
