package outbox_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/internal/outbox"
	mocks "github.com/SergeyBogomolovv/marketplace-order-service/internal/outbox/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handleFunc = func(context.Context, entities.Delivery) error

func batch(deliveries ...entities.Delivery) func(context.Context, int, handleFunc) (int, error) {
	return func(ctx context.Context, _ int, handle handleFunc) (int, error) {
		for _, d := range deliveries {
			_ = handle(ctx, d)
		}
		return len(deliveries), nil
	}
}

func newRelay(store outbox.Store, pub outbox.Publisher, batchSize int) *outbox.Relay {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return outbox.NewRelay(logger, store, pub, config.Outbox{Interval: 10 * time.Millisecond, BatchSize: batchSize})
}

func TestRelay_Flush(t *testing.T) {
	email := entities.Delivery{ID: "d-1", Channel: entities.ChannelEmail, Recipient: "a@example.com", Payload: []byte(`{"to":"a@example.com"}`)}
	sms := entities.Delivery{ID: "d-2", Channel: entities.ChannelSMS, Recipient: "+1555", Payload: []byte(`{"to":"+1555"}`)}

	testCases := []struct {
		name         string
		mockBehavior func(store *mocks.MockStore, pub *mocks.MockPublisher)
		want         int
		wantErr      bool
	}{
		{
			name: "drains until a short batch",
			mockBehavior: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				store.EXPECT().ProcessBatch(mock.Anything, 2, mock.Anything).RunAndReturn(batch(email, sms)).Once()
				store.EXPECT().ProcessBatch(mock.Anything, 2, mock.Anything).RunAndReturn(batch(email)).Once()
				pub.EXPECT().Publish(mock.Anything, email).Return(nil).Twice()
				pub.EXPECT().Publish(mock.Anything, sms).Return(nil).Once()
			},
			want: 3,
		},
		{
			name: "empty queue",
			mockBehavior: func(store *mocks.MockStore, _ *mocks.MockPublisher) {
				store.EXPECT().ProcessBatch(mock.Anything, 2, mock.Anything).Return(0, nil).Once()
			},
			want: 0,
		},
		{
			name: "publish failure is reported to the store",
			mockBehavior: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				store.EXPECT().ProcessBatch(mock.Anything, 2, mock.Anything).
					RunAndReturn(func(ctx context.Context, _ int, handle handleFunc) (int, error) {
						assert.Error(t, handle(ctx, sms))
						return 1, nil
					}).Once()
				pub.EXPECT().Publish(mock.Anything, sms).Return(errors.New("broker down")).Once()
			},
			want: 1,
		},
		{
			name: "broker down waits for the next tick",
			mockBehavior: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				store.EXPECT().ProcessBatch(mock.Anything, 2, mock.Anything).RunAndReturn(batch(email, sms)).Once()
				pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Twice()
			},
			want: 2,
		},
		{
			name: "one failure in a full batch stops the drain",
			mockBehavior: func(store *mocks.MockStore, pub *mocks.MockPublisher) {
				store.EXPECT().ProcessBatch(mock.Anything, 2, mock.Anything).RunAndReturn(batch(email, sms)).Once()
				pub.EXPECT().Publish(mock.Anything, email).Return(nil).Once()
				pub.EXPECT().Publish(mock.Anything, sms).Return(errors.New("broker down")).Once()
			},
			want: 2,
		},
		{
			name: "store failure",
			mockBehavior: func(store *mocks.MockStore, _ *mocks.MockPublisher) {
				store.EXPECT().ProcessBatch(mock.Anything, 2, mock.Anything).Return(0, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockStore(t)
			pub := mocks.NewMockPublisher(t)
			tc.mockBehavior(store, pub)

			n, err := newRelay(store, pub, 2).Flush(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}
}

func TestRelay_RunStopsOnCancel(t *testing.T) {
	store := mocks.NewMockStore(t)
	pub := mocks.NewMockPublisher(t)
	store.EXPECT().ProcessBatch(mock.Anything, mock.Anything, mock.Anything).Return(0, nil).Maybe()
	pub.EXPECT().Close().Return(nil).Once()

	relay := newRelay(store, pub, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop")
	}
	require.NoError(t, relay.Close())
}

// memoryStore settles deliveries the way the postgres store does: failed rows
// go back to pending until they run out of attempts.
type memoryStore struct {
	maxAttempts int
	rows        []*entities.Delivery
}

func (s *memoryStore) ProcessBatch(ctx context.Context, limit int, handle handleFunc) (int, error) {
	n := 0
	for _, d := range s.rows {
		if n == limit {
			break
		}
		if d.Status != entities.DeliveryPending {
			continue
		}
		n++
		d.Attempts++
		if err := handle(ctx, *d); err == nil {
			d.Status = entities.DeliverySent
		} else if d.Attempts >= s.maxAttempts {
			d.Status = entities.DeliveryFailed
		}
	}
	return n, nil
}

func TestRelay_OutageCostsOneAttemptPerTick(t *testing.T) {
	store := &memoryStore{maxAttempts: 5}
	for _, id := range []string{"a", "b", "c"} {
		store.rows = append(store.rows, &entities.Delivery{ID: id, Channel: entities.ChannelEmail, Status: entities.DeliveryPending})
	}
	pub := mocks.NewMockPublisher(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	relay := newRelay(store, pub, 2)
	for range 3 {
		_, err := relay.Flush(context.Background())
		require.NoError(t, err)
	}

	for _, d := range store.rows[:2] {
		assert.Equal(t, 3, d.Attempts, d.ID)
		assert.Equal(t, entities.DeliveryPending, d.Status, d.ID)
	}
	assert.Equal(t, 0, store.rows[2].Attempts)
	pub.AssertNumberOfCalls(t, "Publish", 6)
}
