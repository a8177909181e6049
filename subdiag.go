package subdiag

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dwhensley/subdiag/bitmatrix"
	"github.com/dwhensley/subdiag/blobstore"
	"github.com/dwhensley/subdiag/codec"
	"github.com/dwhensley/subdiag/diagnostic"
	"github.com/dwhensley/subdiag/internal/resource"
	"github.com/dwhensley/subdiag/readings"
	"golang.org/x/sync/errgroup"
)

// MaxColumns is the widest report whose ratings fit in a uint64.
const MaxColumns = 64

// Report is the result of analyzing one diagnostic report.
type Report struct {
	Source string `json:"source,omitempty" cbor:"source,omitempty" yaml:"source,omitempty"`
	Rows   int    `json:"rows" cbor:"rows" yaml:"rows"`
	Cols   int    `json:"cols" cbor:"cols" yaml:"cols"`

	Gamma            uint64 `json:"gamma" cbor:"gamma" yaml:"gamma"`
	Epsilon          uint64 `json:"epsilon" cbor:"epsilon" yaml:"epsilon"`
	PowerConsumption uint64 `json:"power_consumption" cbor:"power_consumption" yaml:"power_consumption"`

	OxygenGenerator uint64 `json:"oxygen_generator" cbor:"oxygen_generator" yaml:"oxygen_generator"`
	CO2Scrubber     uint64 `json:"co2_scrubber" cbor:"co2_scrubber" yaml:"co2_scrubber"`
	LifeSupport     uint64 `json:"life_support" cbor:"life_support" yaml:"life_support"`
}

// Analyzer computes power consumption and life-support ratings.
// It is safe for concurrent use.
type Analyzer struct {
	opts options
	rc   *resource.Controller
}

// New creates an Analyzer.
func New(optFns ...Option) *Analyzer {
	o := applyOptions(optFns)
	return &Analyzer{
		opts: o,
		rc: resource.NewController(resource.Config{
			MaxWorkers:           o.maxWorkers,
			MemoryLimitBytes:     o.memoryLimitBytes,
			ReadLimitBytesPerSec: o.readLimitBytes,
		}),
	}
}

// Codec returns the codec used by Save.
func (a *Analyzer) Codec() codec.Codec {
	return a.opts.codec
}

// Matrix builds a diagnostic matrix from readings.
func (a *Analyzer) Matrix(ctx context.Context, lines []string) (*bitmatrix.Matrix, error) {
	start := time.Now()
	m, err := bitmatrix.New(lines)

	cols := 0
	if err == nil {
		cols = m.Cols()
	}
	a.opts.metricsCollector.RecordParse(len(lines), cols, time.Since(start), err)
	a.opts.logger.LogParse(ctx, len(lines), cols, err)

	if err != nil {
		return nil, translateError(err)
	}
	return m, nil
}

// Analyze parses readings and computes every rating.
func (a *Analyzer) Analyze(ctx context.Context, lines []string) (*Report, error) {
	m, err := a.Matrix(ctx, lines)
	if err != nil {
		a.opts.logger.LogAnalyze(ctx, nil, err)
		return nil, err
	}
	return a.AnalyzeMatrix(ctx, m)
}

// AnalyzeMatrix computes every rating of m.
// Unless WithSequentialRatings is set, the two life-support filters run concurrently.
func (a *Analyzer) AnalyzeMatrix(ctx context.Context, m *bitmatrix.Matrix) (*Report, error) {
	report, err := a.analyzeMatrix(ctx, m)
	a.opts.logger.LogAnalyze(ctx, report, err)
	return report, err
}

func (a *Analyzer) analyzeMatrix(ctx context.Context, m *bitmatrix.Matrix) (*Report, error) {
	if m.Cols() > MaxColumns {
		return nil, &ErrWidth{Cols: m.Cols(), cause: ErrTooWide}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	power := diagnostic.PowerConsumption(m)
	a.opts.metricsCollector.RecordPowerConsumption(time.Since(start))

	var oxygen, co2 diagnostic.Outcome
	if a.opts.sequentialRatings {
		var err error
		if oxygen, err = a.rate(ctx, m, diagnostic.OxygenGenerator); err != nil {
			return nil, err
		}
		if co2, err = a.rate(ctx, m, diagnostic.CO2Scrubber); err != nil {
			return nil, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			oxygen, err = a.rate(gctx, m, diagnostic.OxygenGenerator)
			return err
		})
		g.Go(func() error {
			var err error
			co2, err = a.rate(gctx, m, diagnostic.CO2Scrubber)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return &Report{
		Rows:             m.Rows(),
		Cols:             m.Cols(),
		Gamma:            power.Gamma,
		Epsilon:          power.Epsilon,
		PowerConsumption: power.Product(),
		OxygenGenerator:  oxygen.Value,
		CO2Scrubber:      co2.Value,
		LifeSupport:      oxygen.Value * co2.Value,
	}, nil
}

func (a *Analyzer) rate(ctx context.Context, m *bitmatrix.Matrix, r diagnostic.Rating) (diagnostic.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return diagnostic.Outcome{Rating: r}, err
	}

	start := time.Now()
	out, err := diagnostic.Evaluate(m, r)
	a.opts.metricsCollector.RecordRating(r, out.Iterations, time.Since(start), err)
	a.opts.logger.WithRating(r).LogRating(ctx, out, err)
	return out, err
}

// AnalyzeReader decompresses and parses a report from r, then analyzes it.
func (a *Analyzer) AnalyzeReader(ctx context.Context, r io.Reader) (*Report, error) {
	lines, err := readings.Decode(r)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, lines)
}

// AnalyzeBlob reads the named report from store and analyzes it.
// Reads are paced by WithReadLimit and the blob size counts against WithMemoryLimit.
func (a *Analyzer) AnalyzeBlob(ctx context.Context, store blobstore.BlobStore, name string) (*Report, error) {
	lines, err := a.load(ctx, store, name)
	if err != nil {
		a.opts.logger.WithSource(name).LogAnalyze(ctx, nil, err)
		return nil, err
	}

	report, err := a.Analyze(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	report.Source = name
	return report, nil
}

func (a *Analyzer) load(ctx context.Context, store blobstore.BlobStore, name string) ([]string, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer blob.Close()

	size := blob.Size()
	if err := a.rc.AcquireMemory(size); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	defer a.rc.ReleaseMemory(size)

	rc, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	defer rc.Close()

	lines, err := readings.Decode(resource.NewRateLimitedReader(ctx, rc, a.rc))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lines, nil
}

// Explain runs one life-support filter and records every step.
// On ErrNotConverged the partial explanation is returned with the error.
func (a *Analyzer) Explain(ctx context.Context, lines []string, r diagnostic.Rating) (*diagnostic.Explanation, error) {
	m, err := a.Matrix(ctx, lines)
	if err != nil {
		return nil, err
	}
	if m.Cols() > MaxColumns {
		return nil, &ErrWidth{Cols: m.Cols(), cause: ErrTooWide}
	}

	start := time.Now()
	exp, err := diagnostic.Trace(m, r)
	a.opts.metricsCollector.RecordRating(r, exp.Iterations, time.Since(start), err)
	a.opts.logger.WithRating(r).LogRating(ctx, exp.Outcome, err)
	return exp, err
}

// Save encodes report with the configured codec and writes it to store.
func (a *Analyzer) Save(ctx context.Context, store blobstore.BlobStore, name string, report *Report) error {
	data, err := a.opts.codec.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode %s report: %w", a.opts.codec.Name(), err)
	}
	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
