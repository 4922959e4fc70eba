package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testEvent struct{ name string }

func (e testEvent) Name() string { return e.name }

func TestPublishCallsEverySubscriber(t *testing.T) {
	bus := New(zap.NewNop())

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		bus.Subscribe("thing.created", func(ctx context.Context, event Event) error {
			calls.Add(1)
			return nil
		})
	}
	bus.Subscribe("thing.deleted", func(ctx context.Context, event Event) error {
		t.Error("unrelated listener must not be called")
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "thing.created"})
	bus.Wait()

	assert.Equal(t, int32(3), calls.Load())
}

func TestListenerOutlivesCancelledRequest(t *testing.T) {
	bus := New(zap.NewNop())

	var ctxErr atomic.Value
	bus.Subscribe("thing.created", func(ctx context.Context, event Event) error {
		ctxErr.Store(ctx.Err() == nil)
		return errors.New("logged, not returned")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, testEvent{name: "thing.created"})
	bus.Wait()

	assert.Equal(t, true, ctxErr.Load())
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := New(zap.NewNop())

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), testEvent{name: "nobody.listens"})
		bus.Wait()
	})
}
