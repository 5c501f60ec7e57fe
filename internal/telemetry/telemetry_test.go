package telemetry

import (
	"context"
	"testing"
	"time"

	"agripredict/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorded() (*Recorder, *tracetest.SpanRecorder) {
	sr := tracetest.NewSpanRecorder()
	return NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))), sr
}

func TestNew_NoEndpointIsDisabled(t *testing.T) {
	r, err := New(context.Background(), config.Telemetry{})
	require.NoError(t, err)
	assert.Nil(t, r.provider)
	r.RecordTabSwitch(context.Background(), "yield", "pest")
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestRecordEstimate(t *testing.T) {
	r, sr := newRecorded()
	start := time.Date(2025, 8, 24, 12, 0, 0, 0, time.UTC)

	r.RecordEstimate(context.Background(), Estimate{
		Crop:       "Corn",
		Region:     "Illinois, USA",
		SoilPH:     6.5,
		Yield:      9.8,
		Confidence: 91,
		FromRecord: true,
		Started:    start,
		Duration:   2 * time.Millisecond,
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, "estimate", s.Name())
	assert.Equal(t, start, s.StartTime())
	assert.Equal(t, start.Add(2*time.Millisecond), s.EndTime())

	attrs := map[string]any{}
	for _, kv := range s.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	assert.Equal(t, "Corn", attrs["agripredict.crop"])
	assert.Equal(t, 9.8, attrs["agripredict.yield"])
	assert.Equal(t, int64(91), attrs["agripredict.confidence"])
	assert.Equal(t, true, attrs["agripredict.from_record"])
}

func TestRecordTabSwitch(t *testing.T) {
	r, sr := newRecorded()
	r.RecordTabSwitch(context.Background(), "yield", "weather")

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tab.switch", spans[0].Name())
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordTabSwitch(context.Background(), "a", "b")
	r.RecordEstimate(context.Background(), Estimate{})
	assert.NoError(t, r.Shutdown(context.Background()))
}
