package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/LavaJover/shvark-pawn-service/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishContractEvent(t *testing.T) {
	w := &fakeWriter{}
	p := &DefaultKafkaPublisher{writer: w, topic: "pawn-contract-events"}

	event := domain.ContractEvent{
		ContractID:     "c-1",
		ContractNumber: "SCL240301ABC123",
		StoreID:        "s-1",
		Operation:      "record_transaction",
		OldStatus:      "active",
		NewStatus:      "redeemed",
		TransactionID:  "tx-2",
		Amount:         "25375.00",
		OccurredAt:     "2024-03-16T10:00:00Z",
	}
	require.NoError(t, p.PublishContractEvent(context.Background(), event))

	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "pawn-contract-events", msg.Topic)
	assert.Equal(t, []byte("c-1"), msg.Key)

	var decoded domain.ContractEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublish_PropagatesWriterError(t *testing.T) {
	boom := errors.New("leader not available")
	p := &DefaultKafkaPublisher{writer: &fakeWriter{err: boom}, topic: "t"}

	err := p.PublishContractEvent(context.Background(), domain.ContractEvent{ContractID: "c-1"})
	assert.ErrorIs(t, err, boom)
}
