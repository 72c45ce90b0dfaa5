package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{ServiceName: "skypath"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestTracer_NotNil(t *testing.T) {
	assert.NotNil(t, Tracer())
}

func TestNewSearchMetrics_Records(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewSearchMetrics(mp)
	require.NoError(t, err)

	ctx := context.Background()
	m.Requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	m.Requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "ok")))
	m.Results.Record(ctx, 4)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	requests, ok := byName["skypath.search.requests"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, requests.DataPoints, 1)
	assert.Equal(t, int64(2), requests.DataPoints[0].Value)

	results, ok := byName["skypath.search.results"].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, results.DataPoints, 1)
	assert.Equal(t, uint64(1), results.DataPoints[0].Count)
	assert.Equal(t, int64(4), results.DataPoints[0].Sum)
}

func TestNewSearchMetrics_GlobalProvider(t *testing.T) {
	m, err := NewSearchMetrics(nil)
	require.NoError(t, err)
	assert.NotNil(t, m.Requests)
	assert.NotNil(t, m.Results)
}
