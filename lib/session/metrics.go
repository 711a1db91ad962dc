package session

import (
	"context"
	"fmt"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/go-redis/redis/v8"
)

// metricsHook instruments every command round trip with VictoriaMetrics
// counters and duration histograms. It is attached once per client.
type metricsHook struct{}

var _ redis.Hook = (*metricsHook)(nil)

// startTimeKey is the context key carrying the command start time
type startTimeKey struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see redis.Hook)
// --------------------------------------------------------------------------

func (m *metricsHook) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	return context.WithValue(ctx, startTimeKey{}, time.Now()), nil
}

func (m *metricsHook) AfterProcess(ctx context.Context, cmd redis.Cmder) error {
	m.record(ctx, cmd)
	return nil
}

func (m *metricsHook) BeforeProcessPipeline(ctx context.Context, cmds []redis.Cmder) (context.Context, error) {
	return context.WithValue(ctx, startTimeKey{}, time.Now()), nil
}

func (m *metricsHook) AfterProcessPipeline(ctx context.Context, cmds []redis.Cmder) error {
	for _, cmd := range cmds {
		m.record(ctx, cmd)
	}
	return nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// record updates the per-command counters and histograms
func (m *metricsHook) record(ctx context.Context, cmd redis.Cmder) {
	name := cmd.Name()
	metrics.GetOrCreateCounter(fmt.Sprintf(`redis_commands_total{command=%q}`, name)).Inc()

	// redis.Nil is a well-defined reply (missing key/element), not a failure
	if err := cmd.Err(); err != nil && err != redis.Nil {
		metrics.GetOrCreateCounter(fmt.Sprintf(`redis_command_errors_total{command=%q}`, name)).Inc()
	}

	if start, ok := ctx.Value(startTimeKey{}).(time.Time); ok {
		metrics.GetOrCreateHistogram(fmt.Sprintf(`redis_command_duration_seconds{command=%q}`, name)).UpdateDuration(start)
	}
}
