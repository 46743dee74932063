package events

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"giglane/internal/domain"
	"giglane/pkg/config"
)

func TestNewPublisherDisabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{}

	pub := NewPublisher(Params{
		Lifecycle: lc,
		Config:    cfg,
		Redis:     redis.NewClient(&redis.Options{}),
	})

	_, ok := pub.(NopPublisher)
	require.True(t, ok)
	require.NoError(t, pub.Publish(context.Background(), domain.Event{Kind: domain.KindOrder}))
}
