package randhunt_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/randhunt"
)

func TestBasicMetricsCollector_RecordsRuns(t *testing.T) {
	mc := &randhunt.BasicMetricsCollector{}

	_, err := randhunt.Research().
		Tries(1000).
		Times(1).
		Pattern(regexp.MustCompile("^WKCN$")).
		Workers(4).
		Seed(3).
		Metrics(mc).
		RunParallel(context.Background())
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.RunCount)
	assert.Zero(t, stats.RunErrors)
	assert.Equal(t, int64(1000), stats.TriesTotal)
	assert.Equal(t, int64(4), stats.WorkerCount)
	assert.Equal(t, int64(1000), stats.WorkerTries)
}

func TestBasicMetricsCollector_AccumulatesAcrossRuns(t *testing.T) {
	mc := &randhunt.BasicMetricsCollector{}

	b := randhunt.Research().
		Tries(100).
		Times(1).
		Pattern(regexp.MustCompile("WKCN")).
		Metrics(mc)

	for range 3 {
		_, err := b.RunSequential(context.Background())
		require.NoError(t, err)
	}

	stats := mc.GetStats()
	assert.Equal(t, int64(3), stats.RunCount)
	assert.Equal(t, int64(300), stats.TriesTotal)
	assert.Equal(t, int64(3), stats.WorkerCount)
}

func TestBasicMetricsStats_ZeroValue(t *testing.T) {
	mc := &randhunt.BasicMetricsCollector{}
	stats := mc.GetStats()

	assert.Zero(t, stats.RunCount)
	assert.Zero(t, stats.RunAvgNanos)
}
