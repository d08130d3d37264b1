package provisioning

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/imamik/foolaunch/internal/catalog"
	"github.com/imamik/foolaunch/internal/config"
	"github.com/imamik/foolaunch/internal/platform/aws"
)

// MockObserver is a test implementation of Observer that records events.
type MockObserver struct {
	events   []Event
	messages []string
	fields   map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		events:   make([]Event, 0),
		messages: make([]string, 0),
		fields:   make(map[string]string),
	}
}

func (m *MockObserver) Printf(format string, v ...any) {
	m.messages = append(m.messages, fmt.Sprintf(format, v...))
}

func (m *MockObserver) Event(event Event) {
	m.events = append(m.events, event)
}

func (m *MockObserver) Progress(phase string, current, total int) {
	m.Event(Event{
		Type:    EventProgress,
		Phase:   phase,
		Message: "progress",
		Fields: map[string]string{
			"current": strconv.Itoa(current),
			"total":   strconv.Itoa(total),
		},
	})
}

func (m *MockObserver) WithFields(fields map[string]string) Observer {
	newObserver := NewMockObserver()
	newObserver.fields = mergeFields(m.fields, fields)
	return newObserver
}

// eventsOfType returns the recorded events of type t.
func (m *MockObserver) eventsOfType(t EventType) []Event {
	var out []Event
	for _, e := range m.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// mockMetrics records MetricsRecorder calls.
type mockMetrics struct {
	spotStates []string
	launched   int
}

func (m *mockMetrics) SpotRequestFinished(state string) { m.spotStates = append(m.spotStates, state) }
func (m *mockMetrics) InstancesLaunched(n int)          { m.launched += n }

func testCatalog() *catalog.Catalog {
	return catalog.New(map[string]catalog.InstanceType{
		"m4.large":  {EphemeralVolumes: 0, SpotPrices: map[string]float64{"us-east-1": 0.1}},
		"m3.medium": {EphemeralVolumes: 1},
		"d2.xlarge": {EphemeralVolumes: 3, SpotPrices: map[string]float64{"us-east-1": 0.69}},
	})
}

func testOptions() *config.Options {
	return &config.Options{
		Region:       "us-east-1",
		Image:        "web-2024",
		InstanceType: "m4.large",
		Key:          "deploy",
	}
}

func singleImage(image aws.Image) func(context.Context, string) ([]aws.Image, error) {
	return func(context.Context, string) ([]aws.Image, error) {
		return []aws.Image{image}, nil
	}
}

// newTestContext builds a Context over cloud that never sleeps.
func newTestContext(opts *config.Options, cloud *aws.MockClient) (*Context, *MockObserver) {
	observer := NewMockObserver()
	ctx := NewContext(context.Background(), opts, cloud, testCatalog())
	ctx.Observer = observer
	ctx.Wait = func(context.Context, time.Duration) error { return nil }
	return ctx, observer
}
