package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
)

const (
	DefaultLevel = flate.DefaultCompression
	MinLevel     = flate.HuffmanOnly
	MaxLevel     = flate.BestCompression
)

var (
	ErrFormat       = errors.New("invalid compressed stream")
	ErrInvalidLevel = errors.New("invalid compression level")
)

var defaultCompressor = mustNew(DefaultLevel)

// Compressor deflates and inflates byte sequences at a fixed compression level.
type Compressor struct {
	level   int
	writers sync.Pool
	readers sync.Pool
}

// New creates a Compressor using the given flate level, which must be within MinLevel and MaxLevel.
func New(level int) (*Compressor, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("%w: %d is not within [%d, %d]", ErrInvalidLevel, level, MinLevel, MaxLevel)
	}
	c := &Compressor{level: level}
	c.writers.New = func() any {
		// Level is validated above.
		w, _ := flate.NewWriter(nil, c.level)
		return w
	}
	c.readers.New = func() any {
		return flate.NewReader(nil)
	}
	return c, nil
}

func mustNew(level int) *Compressor {
	c, err := New(level)
	if err != nil {
		panic(err)
	}
	return c
}

// Level returns the configured compression level.
func (c *Compressor) Level() int {
	return c.level
}

// Compress deflates data.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := c.writers.Get().(*flate.Writer)
	defer c.writers.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush compressed data: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates a stream produced by Compress.
func (c *Compressor) Decompress(data []byte) ([]byte, error) {
	r := c.readers.Get().(io.ReadCloser)
	defer c.readers.Put(r)
	if err := r.(flate.Resetter).Reset(bytes.NewReader(data), nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return buf.Bytes(), nil
}

// Compress deflates data with DefaultLevel.
func Compress(data []byte) ([]byte, error) {
	return defaultCompressor.Compress(data)
}

// Decompress inflates data produced by any Compressor.
func Decompress(data []byte) ([]byte, error) {
	return defaultCompressor.Decompress(data)
}
