package rabbitmq

import (
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingAcknowledger struct {
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (a *recordingAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked = append(a.acked, tag)
	return nil
}

func (a *recordingAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = append(a.nacked, tag)
	a.requeue = append(a.requeue, requeue)
	return nil
}

func (a *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func TestNewEventAndDecode(t *testing.T) {
	evt, err := NewEvent(EventProduceAdded, "user-1", map[string]interface{}{"name": "Tomatoes", "quantity": 12.5})
	require.NoError(t, err)
	assert.Equal(t, EventProduceAdded, evt.Type)
	assert.False(t, evt.OccurredAt.IsZero())

	body, err := json.Marshal(evt)
	require.NoError(t, err)

	decoded, err := DecodeEvent(body)
	require.NoError(t, err)
	assert.Equal(t, "user-1", decoded.UserID)
	assert.JSONEq(t, `{"name":"Tomatoes","quantity":12.5}`, string(decoded.Payload))
}

func TestDecodeEvent_Malformed(t *testing.T) {
	_, err := DecodeEvent([]byte("not json"))
	assert.ErrorIs(t, err, ErrMalformedEvent)

	_, err = DecodeEvent([]byte(`{"user_id":"u"}`))
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestNewEvent_UnmarshalablePayload(t *testing.T) {
	_, err := NewEvent(EventOrderCreated, "u", make(chan int))
	assert.Error(t, err)
}

func TestHandleDelivery(t *testing.T) {
	logger := zap.NewNop()
	valid, _ := json.Marshal(Event{Type: EventOrderCreated, UserID: "u"})

	t.Run("ack on success", func(t *testing.T) {
		ack := &recordingAcknowledger{}
		var got Event
		handleDelivery(logger, amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: valid}, func(e Event) error {
			got = e
			return nil
		})
		assert.Equal(t, []uint64{1}, ack.acked)
		assert.Empty(t, ack.nacked)
		assert.Equal(t, EventOrderCreated, got.Type)
	})

	t.Run("drop malformed", func(t *testing.T) {
		ack := &recordingAcknowledger{}
		called := false
		handleDelivery(logger, amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte("{")}, func(Event) error {
			called = true
			return nil
		})
		assert.False(t, called)
		assert.Equal(t, []uint64{2}, ack.nacked)
		assert.Equal(t, []bool{false}, ack.requeue)
	})

	t.Run("requeue first failure", func(t *testing.T) {
		ack := &recordingAcknowledger{}
		handleDelivery(logger, amqp.Delivery{Acknowledger: ack, DeliveryTag: 3, Body: valid}, func(Event) error {
			return errors.New("boom")
		})
		assert.Equal(t, []bool{true}, ack.requeue)
	})

	t.Run("drop redelivered failure", func(t *testing.T) {
		ack := &recordingAcknowledger{}
		handleDelivery(logger, amqp.Delivery{Acknowledger: ack, DeliveryTag: 4, Body: valid, Redelivered: true}, func(Event) error {
			return errors.New("boom")
		})
		assert.Equal(t, []bool{false}, ack.requeue)
	})
}

func TestLogEvents(t *testing.T) {
	assert.NoError(t, LogEvents(zap.NewNop())(Event{Type: EventUserSignedUp}))
}
