package shield

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/keyshield/pkg/bip85"
	"github.com/saylorsolutions/keyshield/pkg/compress"
	"github.com/saylorsolutions/keyshield/pkg/config"
	"github.com/saylorsolutions/keyshield/pkg/diagram"
	"github.com/saylorsolutions/keyshield/pkg/generator"
	"github.com/saylorsolutions/keyshield/pkg/seal"
	"github.com/saylorsolutions/keyshield/pkg/textenc"
	"github.com/sirupsen/logrus"
)

type Shield struct {
	encoding   textenc.Encoding
	compressor *compress.Compressor
	sealer     *seal.TextSealer
	gen        *generator.Generator
}

type options struct {
	keyring    *seal.Keyring
	log        logrus.FieldLogger
	engineOpts []bip85.EngineOpt
}

type Option = func(*options) error

// WithKeyring seals with the given Keyring instead of the process default.
func WithKeyring(keyring *seal.Keyring) Option {
	return func(o *options) error {
		if keyring == nil {
			return seal.ErrNilKeyring
		}
		o.keyring = keyring
		return nil
	}
}

// WithLogger overrides the logger, which is otherwise a logrus.Logger at the configured level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) error {
		if log == nil {
			return errors.New("nil logger")
		}
		o.log = log
		return nil
	}
}

// WithEngineOpts passes options through to the derivation engine.
func WithEngineOpts(opts ...bip85.EngineOpt) Option {
	return func(o *options) error {
		o.engineOpts = append(o.engineOpts, opts...)
		return nil
	}
}

// New validates cfg and wires every component a Shield needs.
func New(cfg config.Config, opts ...Option) (*Shield, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	encoding, _ := cfg.TextEncoding()
	if o.log == nil {
		lvl, _ := cfg.Level()
		log := logrus.New()
		log.SetLevel(lvl)
		o.log = log
	}
	if o.keyring == nil {
		kr, err := seal.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to create keyring: %w", err)
		}
		o.keyring = kr
	}

	compressor, err := compress.New(cfg.Compression.Level)
	if err != nil {
		return nil, err
	}
	enc, err := seal.NewEncryptor(o.keyring)
	if err != nil {
		return nil, err
	}
	sealer, err := seal.NewTextSealer(enc, encoding)
	if err != nil {
		return nil, err
	}
	stretcher, err := diagram.NewStretcher(cfg.StretchOpts()...)
	if err != nil {
		return nil, err
	}
	engine, err := bip85.NewEngine(stretcher, o.engineOpts...)
	if err != nil {
		return nil, err
	}
	gen, err := generator.New(engine, sealer,
		generator.WithLogger(o.log),
		generator.WithWorkers(cfg.Generator.Workers),
		generator.WithMaxCount(cfg.Generator.MaxCount),
	)
	if err != nil {
		return nil, err
	}
	o.log.WithFields(logrus.Fields{
		"encoding":   encoding.String(),
		"level":      compressor.Level(),
		"iterations": stretcher.Iterations(),
	}).Debug("Shield initialized")
	return &Shield{
		encoding:   encoding,
		compressor: compressor,
		sealer:     sealer,
		gen:        gen,
	}, nil
}

func (s *Shield) Encoding() textenc.Encoding {
	return s.encoding
}

// Compress deflates content and encodes the result as text when doCompress is true.
// Otherwise content is decoded, inflated, and returned as a string.
func (s *Shield) Compress(content string, doCompress bool) (string, error) {
	if doCompress {
		data, err := s.compressor.Compress([]byte(content))
		if err != nil {
			return "", err
		}
		return s.encoding.Encode(data), nil
	}
	data, err := s.encoding.Decode(content)
	if err != nil {
		return "", err
	}
	data, err = s.compressor.Decompress(data)
	if err != nil {
		return "", err
	}
	return textenc.UTF8(data)
}

// Encrypt seals content when doEncrypt is true, and opens it otherwise.
func (s *Shield) Encrypt(content string, doEncrypt bool) (string, error) {
	return s.sealer.Encrypt(content, doEncrypt)
}

func (s *Shield) SimpleInit(values []string, salt string) (string, error) {
	return s.gen.SimpleInit(values, salt)
}

func (s *Shield) ComplexInit(values []string, salt string) (string, error) {
	return s.gen.ComplexInit(values, salt)
}

func (s *Shield) MnemonicInit(mnemonic, passphrase string) (string, error) {
	return s.gen.MnemonicInit(mnemonic, passphrase)
}

// Generate derives the target credential for every index from min to max inclusive.
// See generator.Generator.Generate.
func (s *Shield) Generate(master, target string, min, max uint32) ([]string, error) {
	return s.gen.Generate(master, target, min, max)
}
