// Package bulk loads many persisted model record containers concurrently.
//
// A model's coefficients are often persisted as a set of partition files, one
// container per file. The Loader reads and decodes all partitions with a
// bounded worker pool and returns the decoded records keyed by model ID.
package bulk

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/featrec/blob"
	"github.com/arloliu/featrec/errs"
	"github.com/arloliu/featrec/internal/options"
	"github.com/arloliu/featrec/record"
)

const (
	// DefaultMinPartitions is the minimum number of partition files a load
	// accepts unless overridden with WithMinPartitions.
	DefaultMinPartitions = 1
	// DefaultConcurrency is the number of partitions decoded in parallel
	// unless overridden with WithConcurrency.
	DefaultConcurrency = 4
)

// Loader reads partitioned record containers from the filesystem.
//
// A Loader is safe for concurrent use; each Load call runs its own worker
// pool.
type Loader struct {
	minPartitions int
	concurrency   int
}

// LoaderOption configures a Loader.
type LoaderOption = options.Option[*Loader]

// WithMinPartitions sets the minimum number of input paths a Load call
// accepts. Loads with fewer paths fail with ErrTooFewPartitions.
//
// Parameters:
//   - n: Minimum partition count, must be at least 1
func WithMinPartitions(n int) LoaderOption {
	return options.New(func(l *Loader) error {
		if n < 1 {
			return fmt.Errorf("%w: min partitions %d", errs.ErrTooFewPartitions, n)
		}
		l.minPartitions = n

		return nil
	})
}

// WithConcurrency sets how many partition files are read and decoded in
// parallel.
//
// Parameters:
//   - n: Worker count, must be at least 1
func WithConcurrency(n int) LoaderOption {
	return options.New(func(l *Loader) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidConcurrency, n)
		}
		l.concurrency = n

		return nil
	})
}

// NewLoader creates a Loader with the given options.
//
// Returns:
//   - *Loader: Configured loader
//   - error: Option validation errors
func NewLoader(opts ...LoaderOption) (*Loader, error) {
	loader := &Loader{
		minPartitions: DefaultMinPartitions,
		concurrency:   DefaultConcurrency,
	}
	if err := options.Apply(loader, opts...); err != nil {
		return nil, err
	}

	return loader, nil
}

// Load reads and decodes every partition file and returns the records keyed
// by model ID.
//
// Partitions are processed concurrently; the first failure cancels the
// remaining work and is returned. Two partitions carrying the same model ID
// fail the whole load with ErrDuplicateModelID, since silently keeping one of
// them would hide a partitioning bug.
//
// Parameters:
//   - ctx: Context for cancellation
//   - paths: Partition file paths, at least the configured minimum
//
// Returns:
//   - map[string]*record.Record: Decoded records keyed by model ID
//   - error: Validation, I/O or decoding errors
func (l *Loader) Load(ctx context.Context, paths []string) (map[string]*record.Record, error) {
	if len(paths) == 0 {
		return nil, errs.ErrNoInputPaths
	}
	if len(paths) < l.minPartitions {
		return nil, fmt.Errorf("%w: got %d paths, need at least %d", errs.ErrTooFewPartitions, len(paths), l.minPartitions)
	}
	for i, path := range paths {
		if path == "" {
			return nil, fmt.Errorf("%w: path at position %d", errs.ErrEmptyInputPath, i)
		}
	}

	var mu sync.Mutex
	records := make(map[string]*record.Record, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(l.concurrency)

	for _, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rec, err := loadPartition(path)
			if err != nil {
				return fmt.Errorf("partition %s: %w", path, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if _, exists := records[rec.ModelID]; exists {
				return fmt.Errorf("%w: model %q in partition %s", errs.ErrDuplicateModelID, rec.ModelID, path)
			}
			records[rec.ModelID] = rec

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

func loadPartition(path string) (*record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoder, err := blob.NewRecordDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
