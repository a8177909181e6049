// Package resource bounds the work a batch analysis may have in flight.
//
// A Controller governs three resources:
//
//   - Workers: concurrent report analyses (weighted semaphore)
//   - Memory: bytes of report data held at once (fail-fast)
//   - Reads: bytes per second pulled from blob storage (token bucket)
//
// # Workers
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 4})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// # Reads
//
//	rc := resource.NewController(resource.Config{ReadLimitBytesPerSec: 8 << 20})
//	r := resource.NewRateLimitedReader(ctx, blobReader, rc)
//
// Reads larger than the limiter burst are admitted in burst-sized chunks.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully. They become no-ops.
package resource
