// Package subdiag analyzes submarine diagnostic reports.
//
// A report is a list of equal-width binary readings such as "10110". From it the
// Analyzer derives two pairs of ratings:
//
//   - power consumption: gamma (per-column majority bits) and epsilon (its complement)
//   - life support: the oxygen generator and CO2 scrubber ratings, each the one reading
//     that survives an iterative per-column filter
//
// # Quick Start
//
//	a := subdiag.New()
//	report, err := a.Analyze(ctx, []string{"00100", "11110", "10110", ...})
//	if err != nil { ... }
//	fmt.Println(report.PowerConsumption, report.LifeSupport)
//
// Reports can also be read from a blob store, optionally zstd, gzip or lz4 compressed:
//
//	store := blobstore.NewLocalStore("./reports")
//	report, err := a.AnalyzeBlob(ctx, store, "day3.txt.zst")
//
// # Batch Analysis
//
// AnalyzeBatch analyzes many reports concurrently. Concurrency, bytes held in memory
// and read throughput are bounded by the options:
//
//	a := subdiag.New(
//	    subdiag.WithMaxWorkers(8),
//	    subdiag.WithReadLimit(16<<20),
//	)
//	results, err := a.AnalyzePrefix(ctx, store, "2021/")
//
// # Explaining a Rating
//
// Explain records every filter step, including the original rows that survived it:
//
//	exp, err := a.Explain(ctx, lines, diagnostic.CO2Scrubber)
//	for _, s := range exp.Steps {
//	    fmt.Println(s.Column, s.Kept, s.Survivors.ToArray())
//	}
//
// # Observability
//
// WithLogger installs a slog-based Logger and WithMetricsCollector a MetricsCollector.
// See metrics/prometheus for a Prometheus adapter.
package subdiag
