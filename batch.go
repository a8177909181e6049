package subdiag

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dwhensley/subdiag/blobstore"
)

// BatchResult is the outcome for one report of a batch.
type BatchResult struct {
	Source string
	Report *Report
	Err    error
}

// AnalyzeBatch analyzes the named reports concurrently, at most WithMaxWorkers at a time.
//
// Results are returned in the order of names. A failing report records its error in
// its BatchResult and does not stop the batch. If ctx is canceled, reports not yet
// started are skipped and ctx.Err() is returned alongside the results gathered so far.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, store blobstore.BlobStore, names []string) ([]BatchResult, error) {
	start := time.Now()
	results := make([]BatchResult, len(names))
	for i, name := range names {
		results[i].Source = name
	}

	var (
		wg      sync.WaitGroup
		stopErr error
	)
	for i, name := range names {
		if err := a.rc.AcquireWorker(ctx); err != nil {
			stopErr = err
			for j := i; j < len(names); j++ {
				results[j].Err = err
			}
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer a.rc.ReleaseWorker()

			report, err := a.AnalyzeBlob(ctx, store, name)
			results[i].Report = report
			results[i].Err = err
		}()
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	a.opts.metricsCollector.RecordBatch(len(names), failed, time.Since(start))
	a.opts.logger.LogBatch(ctx, len(names), failed)

	return results, stopErr
}

// AnalyzePrefix lists every report under prefix and analyzes them with AnalyzeBatch.
func (a *Analyzer) AnalyzePrefix(ctx context.Context, store blobstore.BlobStore, prefix string) ([]BatchResult, error) {
	names, err := store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}
	return a.AnalyzeBatch(ctx, store, names)
}
