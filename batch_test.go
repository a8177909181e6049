package subdiag

import (
	"context"
	"fmt"
	"testing"

	"github.com/dwhensley/subdiag/blobstore"
	"github.com/dwhensley/subdiag/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T) *blobstore.MemoryStore {
	t.Helper()
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	rng := testutil.NewRNG(7)

	for i := 0; i < 10; i++ {
		report := ""
		for _, l := range rng.DistinctReadings(50, 8) {
			report += l + "\n"
		}
		require.NoError(t, store.Put(ctx, fmt.Sprintf("reports/%02d.txt", i), []byte(report)))
	}
	require.NoError(t, store.Put(ctx, "reports/bad.txt", []byte("0101\n01\n")))
	require.NoError(t, store.Put(ctx, "other/example.txt", []byte(exampleText())))
	return store
}

func TestAnalyzePrefix(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	metrics := &BasicMetricsCollector{}
	a := New(WithMaxWorkers(4), WithMetricsCollector(metrics))

	results, err := a.AnalyzePrefix(ctx, store, "reports/")
	require.NoError(t, err)
	require.Len(t, results, 11)

	for i, r := range results[:10] {
		assert.Equal(t, fmt.Sprintf("reports/%02d.txt", i), r.Source)
		require.NoError(t, r.Err)
		assert.Equal(t, r.Source, r.Report.Source)
		assert.Equal(t, 50, r.Report.Rows)
	}

	bad := results[10]
	assert.Equal(t, "reports/bad.txt", bad.Source)
	assert.ErrorIs(t, bad.Err, ErrRaggedRows)
	assert.Nil(t, bad.Report)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.BatchCount)
	assert.Equal(t, int64(11), stats.BatchItems)
	assert.Equal(t, int64(1), stats.BatchFailed)
	assert.Zero(t, a.rc.MemoryUsage())
}

func TestAnalyzeBatch_MatchesSingle(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	a := New(WithMaxWorkers(3))

	results, err := a.AnalyzeBatch(ctx, store, []string{"other/example.txt", "reports/03.txt"})
	require.NoError(t, err)

	want := *exampleReport
	want.Source = "other/example.txt"
	assert.Equal(t, &want, results[0].Report)

	single, err := a.AnalyzeBlob(ctx, store, "reports/03.txt")
	require.NoError(t, err)
	assert.Equal(t, single, results[1].Report)
}

func TestAnalyzeBatch_Canceled(t *testing.T) {
	store := seedStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := New().AnalyzePrefix(ctx, blobstore.BlobStore(store), "reports/")
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 11)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	results, err := New().AnalyzeBatch(context.Background(), blobstore.NewMemoryStore(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
