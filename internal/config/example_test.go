package config_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SAP-F-2025/challenge-service/internal/config"
	"github.com/SAP-F-2025/challenge-service/internal/events"
)

// Mock publishing is what a local setup without Kafka uses. Switching
// Publisher to "kafka" and filling KafkaBrokers sends the same events to
// AnswerTopic instead.
func ExampleEventConfig_CreateEventPublisher() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.EventConfig{Enabled: true, Publisher: "mock"}

	publisher, err := cfg.CreateEventPublisher(logger)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer publisher.Close()

	event := events.NewAnswerSubmittedEvent(events.AnswerSubmittedEvent{
		AnswerID:      7,
		ChallengeID:   3,
		AssessmentID:  1,
		UserID:        "u-1",
		ChallengeType: "QCM",
		Value:         "1,3",
	}, false)
	if err := publisher.PublishAnswerEvent(context.Background(), event); err != nil {
		fmt.Println(err)
		return
	}

	mock := publisher.(*events.MockEventPublisher)
	for _, e := range mock.GetPublishedEvents() {
		fmt.Println(e.Type, e.Source)
	}
	// Output: answer.submitted challenge-service
}

func ExampleEventConfig_GetKafkaBrokers() {
	cfg := config.EventConfig{KafkaBrokers: "kafka-1:9092, kafka-2:9092,,"}
	fmt.Println(cfg.GetKafkaBrokers())
	// Output: [kafka-1:9092 kafka-2:9092]
}
