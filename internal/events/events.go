package events

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"giglane/internal/domain"
	"giglane/pkg/config"
)

// TaskLifecycleEvent is the asynq task type notification workers subscribe to.
const TaskLifecycleEvent = "lifecycle:event"

// Publisher hands an emitted event to external collaborators. The engine
// only emits; delivery semantics live on the other side of the queue.
type Publisher interface {
	Publish(ctx context.Context, evt domain.Event) error
}

type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, evt domain.Event) error { return nil }

type AsynqPublisher struct {
	client *asynq.Client
}

func NewAsynqPublisher(client *asynq.Client) *AsynqPublisher {
	return &AsynqPublisher{client: client}
}

func (p *AsynqPublisher) Publish(ctx context.Context, evt domain.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TaskLifecycleEvent, payload)
	_, err = p.client.EnqueueContext(ctx, task, asynq.Queue("default"))
	return err
}

var Module = fx.Module("events",
	fx.Provide(NewPublisher),
)

type Params struct {
	fx.In
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Redis     *redis.Client
}

func NewPublisher(p Params) Publisher {
	if !p.Config.Events.Enable {
		return NopPublisher{}
	}

	client := asynq.NewClientFromRedisClient(p.Redis)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	zap.L().Info("[Events] asynq publisher enabled")
	return NewAsynqPublisher(client)
}
