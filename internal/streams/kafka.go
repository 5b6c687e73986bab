package streams

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rewardlabs/points-txcore/internal/logger"
	"github.com/rewardlabs/points-txcore/internal/models"
	"github.com/segmentio/kafka-go"
)

// EventHandler receives each decoded lifecycle event.
type EventHandler func(models.StatusEvent)

// KafkaStatusStream consumes transaction lifecycle events from a Kafka
// topic. Messages are keyed by transaction id upstream; delivery is
// at-least-once and the synchronizer downstream deduplicates, so offsets are
// committed after handling without further bookkeeping.
type KafkaStatusStream struct {
	reader  *kafka.Reader
	handler EventHandler
}

// NewKafkaStatusStream creates a consumer for the status topic.
func NewKafkaStatusStream(brokers []string, topic, groupID string, handler EventHandler) *KafkaStatusStream {
	return &KafkaStatusStream{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		handler: handler,
	}
}

// Run consumes until the context is cancelled.
func (s *KafkaStatusStream) Run(ctx context.Context) error {
	defer s.reader.Close()

	for {
		msg, err := s.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		event, err := decodeStatusEvent(msg.Value)
		if err != nil {
			logger.Log.Errorw("dropping undecodable status event",
				"key", string(msg.Key), "error", err)
		} else {
			s.handler(event)
		}

		if err := s.reader.CommitMessages(ctx, msg); err != nil {
			logger.Log.Errorw("failed to commit status event offset", "error", err)
		}
	}
}

func decodeStatusEvent(raw []byte) (models.StatusEvent, error) {
	var event models.StatusEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return models.StatusEvent{}, err
	}
	if event.ID == "" {
		return models.StatusEvent{}, errors.New("status event without transaction id")
	}
	return event, nil
}
