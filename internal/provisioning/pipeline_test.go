package provisioning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/foolaunch/internal/config"
	"github.com/imamik/foolaunch/internal/platform/aws"
)

type funcPhase struct {
	name string
	fn   func(*Context) error
}

func (p *funcPhase) Name() string                 { return p.name }
func (p *funcPhase) Provision(ctx *Context) error { return p.fn(ctx) }

func phaseFunc(name string, fn func(*Context) error) Phase {
	return &funcPhase{name: name, fn: fn}
}

func TestRunPhases_Success(t *testing.T) {
	t.Parallel()
	var executed []string
	observer := NewMockObserver()
	ctx := &Context{Observer: observer}

	err := RunPhases(ctx, []Phase{
		phaseFunc("plan", func(_ *Context) error { executed = append(executed, "plan"); return nil }),
		phaseFunc("submit", func(_ *Context) error { executed = append(executed, "submit"); return nil }),
		phaseFunc("finalize", func(_ *Context) error { executed = append(executed, "finalize"); return nil }),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"plan", "submit", "finalize"}, executed)
	assert.Len(t, observer.eventsOfType(EventPhaseStarted), 3)
	assert.Len(t, observer.eventsOfType(EventPhaseCompleted), 3)
	assert.Len(t, observer.eventsOfType(EventProgress), 3)
}

func TestRunPhases_StopsOnError(t *testing.T) {
	t.Parallel()
	var executed []string
	boom := errors.New("boom")
	observer := NewMockObserver()
	ctx := &Context{Observer: observer}

	err := RunPhases(ctx, []Phase{
		phaseFunc("plan", func(_ *Context) error { executed = append(executed, "plan"); return nil }),
		phaseFunc("submit", func(_ *Context) error { executed = append(executed, "submit"); return boom }),
		phaseFunc("finalize", func(_ *Context) error { executed = append(executed, "finalize"); return nil }),
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, "submit phase failed: boom", err.Error())
	assert.Equal(t, []string{"plan", "submit"}, executed)
	assert.Len(t, observer.eventsOfType(EventPhaseFailed), 1)
}

func TestRunPhases_Empty(t *testing.T) {
	t.Parallel()
	ctx := &Context{Observer: NewMockObserver()}
	assert.NoError(t, RunPhases(ctx, nil))
}

func TestDefaultPhases(t *testing.T) {
	t.Parallel()
	var names []string
	for _, p := range DefaultPhases() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"validation", "plan", "submit", "finalize"}, names)
}

func TestNewContext(t *testing.T) {
	t.Parallel()
	opts := &config.Options{Region: "eu-west-1"}
	cloud := &aws.MockClient{}

	ctx := NewContext(context.Background(), opts, cloud, testCatalog())

	assert.Same(t, opts, ctx.Options)
	assert.Same(t, cloud, ctx.Cloud)
	assert.Equal(t, "eu-west-1", ctx.Region)
	assert.Equal(t, config.DefaultPollInterval, ctx.PollInterval)
	assert.NotNil(t, ctx.State)
	assert.NotNil(t, ctx.Wait)
	assert.IsType(t, &ConsoleObserver{}, ctx.Observer)
	assert.NotNil(t, ctx.metrics())
}

func TestSleep(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(cancelled, time.Hour), context.Canceled)
}
