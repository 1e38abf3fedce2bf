package diagram

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultLargeIterations       uint64 = 1 << 20
	DefaultInteractiveIterations uint64 = 1 << 17
	DefaultRelBlockSize          uint8  = 8
	DefaultCpuCost               uint8  = 1
	SeedSize                     uint8  = 512 / 8
)

// Stretcher derives seeds from diagrams with scrypt.
type Stretcher struct {
	iterations        uint64
	relativeBlockSize uint8
	cpuCost           uint8
	seedSize          uint8
}

func (s *Stretcher) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&s.iterations),
		bin.Byte(&s.relativeBlockSize),
		bin.Byte(&s.cpuCost),
		bin.Byte(&s.seedSize),
	)
}

type StretchOpt = func(*Stretcher) error

// SetLongDelayIterations sets a higher iteration count, which is much more resistant to guessing the diagram.
func SetLongDelayIterations() StretchOpt {
	return func(s *Stretcher) error {
		s.iterations = DefaultLargeIterations
		return nil
	}
}

// SetShortDelayIterations sets a lower iteration count. This is the default.
func SetShortDelayIterations() StretchOpt {
	return func(s *Stretcher) error {
		s.iterations = DefaultInteractiveIterations
		return nil
	}
}

// SetIterations allows the caller to customize the iteration count, which must be a power of 2 greater than 1.
// Only use this option if you know what you're doing.
func SetIterations(iterations uint64) StretchOpt {
	return func(s *Stretcher) error {
		if iterations <= 1 {
			return errors.New("iterations cannot be <= 1")
		}
		if iterations&(iterations-1) != 0 {
			return errors.New("iterations must be a power of 2")
		}
		s.iterations = iterations
		return nil
	}
}

// SetCPUCost sets the parallelism factor from the default of 1.
// Only use this option if you know what you're doing.
func SetCPUCost(cost uint8) StretchOpt {
	return func(s *Stretcher) error {
		if cost < DefaultCpuCost {
			return errors.New("cpu cost must be at least 1")
		}
		s.cpuCost = cost
		return nil
	}
}

// SetRelativeBlockSize sets the relative block size.
// Only use this option if you know what you're doing.
func SetRelativeBlockSize(size uint8) StretchOpt {
	return func(s *Stretcher) error {
		if size < DefaultRelBlockSize {
			return errors.New("relative block size must be at least 8")
		}
		s.relativeBlockSize = size
		return nil
	}
}

// NewStretcher creates a Stretcher using zero or more StretchOpt.
// By default, DefaultInteractiveIterations are used.
func NewStretcher(opts ...StretchOpt) (*Stretcher, error) {
	s := &Stretcher{
		iterations:        DefaultInteractiveIterations,
		relativeBlockSize: DefaultRelBlockSize,
		cpuCost:           DefaultCpuCost,
		seedSize:          SeedSize,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Stretcher) Iterations() uint64 {
	return s.iterations
}

func (s *Stretcher) RelativeBlockSize() uint8 {
	return s.relativeBlockSize
}

func (s *Stretcher) CPUCost() uint8 {
	return s.cpuCost
}

// Seed stretches the diagram and salt into a seed of SeedSize bytes.
// The same diagram, salt, and settings always produce the same seed.
func (s *Stretcher) Seed(d Diagram, salt []byte) ([]byte, error) {
	secret, err := d.MarshalBinary()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := s.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, fmt.Errorf("failed to encode stretch parameters: %w", err)
	}
	buf.Write(salt)
	seed, err := scrypt.Key(secret, buf.Bytes(), int(s.iterations), int(s.relativeBlockSize), int(s.cpuCost), int(s.seedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to stretch diagram: %w", err)
	}
	return seed, nil
}
