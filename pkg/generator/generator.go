package generator

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDerivation  = errors.New("derivation failed")
	ErrUnsupported = errors.New("engine does not support this operation")
	ErrRangeLimit  = errors.New("index range exceeds the configured limit")
)

// Generator seals master keys and derives child credentials from sealed master keys.
// It's safe for concurrent use, and concurrent Generate calls don't interfere with each other.
type Generator struct {
	engine  Engine
	sealer  Sealer
	log      logrus.FieldLogger
	workers  int
	maxCount uint64
}

type Option = func(*Generator) error

// WithLogger sets the logger used for diagnostics. Key material is never logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Generator) error {
		if log == nil {
			return errors.New("nil logger")
		}
		g.log = log
		return nil
	}
}

// WithWorkers sets the number of indexes derived concurrently by a single Generate call.
// Zero uses the number of CPUs.
func WithWorkers(workers int) Option {
	return func(g *Generator) error {
		if workers < 0 {
			return fmt.Errorf("workers cannot be negative, got %d", workers)
		}
		if workers == 0 {
			workers = runtime.NumCPU()
		}
		g.workers = workers
		return nil
	}
}

// WithMaxCount limits how many indexes a single Generate call may cover.
// Zero means no limit, in which case callers must bound the range themselves since results are allocated up front.
func WithMaxCount(maxCount uint64) Option {
	return func(g *Generator) error {
		g.maxCount = maxCount
		return nil
	}
}

func New(engine Engine, sealer Sealer, opts ...Option) (*Generator, error) {
	if engine == nil {
		return nil, errors.New("nil engine")
	}
	if sealer == nil {
		return nil, errors.New("nil sealer")
	}
	g := &Generator{
		engine:  engine,
		sealer:  sealer,
		log:     logrus.New(),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// SimpleInit derives a master key from a simple diagram and salt, and returns it sealed.
func (g *Generator) SimpleInit(values []string, salt string) (string, error) {
	return g.init(func() (string, error) {
		return g.engine.SimpleMaster(values, []byte(salt))
	})
}

// ComplexInit derives a master key from a complex diagram and salt, and returns it sealed.
func (g *Generator) ComplexInit(values []string, salt string) (string, error) {
	return g.init(func() (string, error) {
		return g.engine.ComplexMaster(values, []byte(salt))
	})
}

// MnemonicInit derives a master key from a mnemonic and passphrase, and returns it sealed.
// This fails with ErrUnsupported if the Engine doesn't implement MnemonicEngine.
func (g *Generator) MnemonicInit(mnemonic, passphrase string) (string, error) {
	engine, ok := g.engine.(MnemonicEngine)
	if !ok {
		return "", ErrUnsupported
	}
	return g.init(func() (string, error) {
		return engine.MnemonicMaster(mnemonic, passphrase)
	})
}

func (g *Generator) init(derive func() (string, error)) (string, error) {
	master, err := derive()
	if err != nil {
		return "", fmt.Errorf("%w: failed to create master: %w", ErrDerivation, err)
	}
	return g.sealer.SealString(master)
}

// Generate derives the target credential for every index in [min, max] from a sealed master key.
// An unknown target is logged and yields an empty result without an error.
// A range where min > max yields an empty result once the master key has been opened and parsed.
// A range larger than the WithMaxCount limit fails with ErrRangeLimit before the master key is opened.
func (g *Generator) Generate(sealedMaster, target string, min, max uint32) ([]string, error) {
	t, err := ParseTarget(target)
	if err != nil {
		g.log.WithField("target", target).Warnf("Unknown target '%s', possible values: [%s]", target, targetNames())
		return []string{}, nil
	}
	if g.maxCount > 0 && min <= max && uint64(max)-uint64(min)+1 > g.maxCount {
		return nil, fmt.Errorf("%w: [%d, %d] covers %d indexes, at most %d are allowed", ErrRangeLimit, min, max, uint64(max)-uint64(min)+1, g.maxCount)
	}

	serialized, err := g.sealer.OpenString(sealedMaster)
	if err != nil {
		return nil, fmt.Errorf("failed to open master key: %w", err)
	}
	master, err := g.engine.ParseMaster(serialized)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse master: %w", ErrDerivation, err)
	}
	if min > max {
		return []string{}, nil
	}

	count := uint64(max) - uint64(min) + 1
	results := make([]string, count)
	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(g.workers)
	for i := uint64(0); i < count; i++ {
		if ctx.Err() != nil {
			break
		}
		index := min + uint32(i)
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			cred, err := t.derive(master, index)
			if err != nil {
				return fmt.Errorf("%w: %s at index %d: %w", ErrDerivation, t, index, err)
			}
			results[i] = cred
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	g.log.WithFields(logrus.Fields{
		"target": t.String(),
		"min":    min,
		"max":    max,
	}).Debugf("Generated %d credentials", count)
	return results, nil
}
