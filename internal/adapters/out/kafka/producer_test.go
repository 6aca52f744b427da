package kafka_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"freight/internal/adapters/out/kafka"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []skafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

type namedEvent struct {
	ShipmentID string `json:"shipment_id"`
}

func (namedEvent) EventName() string { return "quotes.computed" }

func newProducer(w kafka.Writer) *kafka.Producer {
	return kafka.NewProducerWithWriter(w, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProducer_Publish(t *testing.T) {
	fw := &fakeWriter{}
	p := newProducer(fw)

	require.NoError(t, p.Publish(t.Context(), "shipment-1", namedEvent{ShipmentID: "shipment-1"}))
	require.NoError(t, p.Publish(t.Context(), "shipment-2", map[string]string{"a": "b"}))

	require.Len(t, fw.msgs, 2)
	assert.Equal(t, "shipment-1", string(fw.msgs[0].Key))
	assert.JSONEq(t, `{"shipment_id":"shipment-1"}`, string(fw.msgs[0].Value))
	require.Len(t, fw.msgs[0].Headers, 1)
	assert.Equal(t, "quotes.computed", string(fw.msgs[0].Headers[0].Value))
	assert.Empty(t, fw.msgs[1].Headers)
}

func TestProducer_PublishErrors(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker down")}
	p := newProducer(fw)

	err := p.Publish(t.Context(), "k", namedEvent{})
	assert.ErrorContains(t, err, "broker down")

	err = p.Publish(t.Context(), "k", func() {})
	assert.ErrorContains(t, err, "marshal event")
}

func TestProducer_Close(t *testing.T) {
	fw := &fakeWriter{}
	require.NoError(t, newProducer(fw).Close())
	assert.True(t, fw.closed)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, kafka.NopPublisher{}.Publish(t.Context(), "k", "v"))
}
