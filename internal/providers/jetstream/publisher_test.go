package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/mocks"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/providers/jetstream"
)

var testConfig = jetstream.Config{
	URL:            "nats://localhost:4222",
	StreamName:     "OSNFT_EVENTS",
	MaxReconnects:  3,
	ConnectionName: "test",
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "osnft.events.sale_bought", jetstream.Subject(domain.EventSaleBought))
	assert.Equal(t, "osnft.events.bid_placed", jetstream.Subject(domain.EventBidPlaced))
}

func TestNewPublisherEnsuresStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(conn, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cfg natsjs.StreamConfig) error {
			assert.Equal(t, "OSNFT_EVENTS", cfg.Name)
			assert.Equal(t, []string{"osnft.events.>"}, cfg.Subjects)
			return nil
		})
	conn.EXPECT().Close()

	p, err := jetstream.NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJSON())
	require.NoError(t, err)
	p.Close()
}

func TestNewPublisherFailures(t *testing.T) {
	t.Run("connect error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		natsJS := mocks.NewMockNatsJetStream(ctrl)
		natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nil, nil, errors.New("no servers"))

		_, err := jetstream.NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJSON())
		require.ErrorContains(t, err, "failed to connect to NATS")
	})

	t.Run("stream error closes the connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		natsJS := mocks.NewMockNatsJetStream(ctrl)
		conn := mocks.NewMockNatsConn(ctrl)
		js := mocks.NewMockJetStream(ctrl)

		natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(conn, js, nil)
		js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(errors.New("not authorized"))
		conn.EXPECT().Close()

		_, err := jetstream.NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJSON())
		require.ErrorContains(t, err, "failed to ensure stream OSNFT_EVENTS")
	})
}

func TestPublishEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)

	p, err := jetstream.NewPublisher(context.Background(), testConfig, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	event := &domain.EventRecord{
		ID:       "01HX0000000000000000000000",
		Height:   7,
		Index:    1,
		Type:     domain.EventSaleCreated,
		Payload:  json.RawMessage(`{"sale":{}}`),
		Checksum: "abc",
	}

	js.EXPECT().Publish(gomock.Any(), "osnft.events.sale_created", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var got domain.EventRecord
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, event.ID, got.ID)
			assert.Equal(t, uint64(7), got.Height)
			assert.JSONEq(t, `{"sale":{}}`, string(got.Payload))
			return &natsjs.PubAck{Stream: "OSNFT_EVENTS", Sequence: 1}, nil
		})
	require.NoError(t, p.PublishEvent(context.Background(), event))

	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	err = p.PublishEvent(context.Background(), event)
	require.ErrorContains(t, err, "failed to publish event")
}
