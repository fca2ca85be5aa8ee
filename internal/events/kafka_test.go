package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records every message instead of talking to a broker.
type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func bookedEvent() Event {
	return Event{
		Type:        ActivityBooked,
		PackageID:   uuid.New(),
		PassengerID: uuid.New(),
		ActivityID:  uuid.New(),
		Amount:      45,
		Balance:     55,
		OccurredAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, time.Second)
	e := bookedEvent()

	require.NoError(t, p.Publish(context.Background(), e))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, e.PackageID.String(), string(msg.Key))
	assert.Equal(t, e.OccurredAt, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "activity.booked", string(msg.Headers[0].Value))

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.True(t, e.OccurredAt.Equal(decoded.OccurredAt))
	decoded.OccurredAt = e.OccurredAt
	assert.Equal(t, e, decoded)
}

func TestKafkaPublisher_Publish_WriteError(t *testing.T) {
	writeErr := errors.New("broker unavailable")
	p := newKafkaPublisher(&fakeWriter{err: writeErr}, time.Second)

	err := p.Publish(context.Background(), bookedEvent())

	assert.ErrorIs(t, err, writeErr)
}

// stalledWriter never reaches a broker; it returns once ctx is done.
type stalledWriter struct{ fakeWriter }

func (w *stalledWriter) WriteMessages(ctx context.Context, _ ...kafka.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestKafkaPublisher_Publish_TimesOut(t *testing.T) {
	p := newKafkaPublisher(&stalledWriter{}, 20*time.Millisecond)
	start := time.Now()

	err := p.Publish(context.Background(), bookedEvent())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestKafkaPublisher_Close(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, time.Second)

	require.NoError(t, p.Close())

	assert.True(t, w.closed)
}

func TestEncodeMessage_PassengerAddedOmitsActivity(t *testing.T) {
	e := Event{Type: PassengerAdded, PackageID: uuid.New(), PassengerID: uuid.New(), Balance: 100}

	msg, err := encodeMessage(e)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &raw))
	assert.NotContains(t, raw, "activity_id")
	assert.NotContains(t, raw, "amount")
	assert.Equal(t, "passenger.added", raw["type"])
}
