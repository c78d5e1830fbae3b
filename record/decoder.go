package record

import (
	"log/slog"

	"github.com/arloliu/featrec/errs"
	"github.com/arloliu/featrec/feature"
	"github.com/arloliu/featrec/internal/options"
	"github.com/arloliu/featrec/vector"
)

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithLogger attaches a logger used to report skipped entries at debug level.
// Without a logger the decoder stays silent.
func WithLogger(logger *slog.Logger) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.logger = logger
	})
}

// Decoder reconstructs dense vectors from ordered feature entry sequences.
//
// The Decoder is stateless between calls and safe for concurrent use.
type Decoder struct {
	logger *slog.Logger
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	decoder := &Decoder{}

	if err := options.Apply(decoder, opts...); err != nil {
		return nil, err
	}

	return decoder, nil
}

// Decode reconstructs a dense vector of dimension dir.Dimension() from the
// given entries.
//
// Entries are applied in input order. An entry whose identity the directory
// does not know is skipped silently: a record saved against a superset of the
// current feature universe still loads, minus its retired features. When two
// entries target the same index the later write wins; duplicate targets do
// not occur under a well-formed bijective directory and the behavior is
// observed rather than contractual.
//
// Returns:
//   - vector.Dense: Freshly allocated vector; never shares memory with inputs
//   - error: ErrNilEntries or ErrNilDirectory for absent inputs. Unknown
//     identities are never an error.
func (d *Decoder) Decode(entries []feature.Entry, dir *feature.Directory) (vector.Dense, error) {
	if entries == nil {
		return nil, errs.ErrNilEntries
	}
	if dir == nil {
		return nil, errs.ErrNilDirectory
	}

	dense := vector.NewDense(dir.Dimension())
	for _, entry := range entries {
		index, ok := dir.Index(entry.Identity)
		if !ok {
			if d.logger != nil {
				d.logger.Debug("skipping unknown feature identity",
					slog.String("name", entry.Identity.Name),
					slog.String("term", entry.Identity.Term))
			}

			continue
		}

		dense[index] = entry.Value
	}

	return dense, nil
}
