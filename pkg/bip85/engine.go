package bip85

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/keyshield/pkg/diagram"
	"github.com/saylorsolutions/keyshield/pkg/generator"
)

const (
	DefaultMnemonicWords  = 24
	DefaultPasswordLength = 20
	DefaultEmojiLength    = 20
)

var (
	_ generator.Engine         = (*Engine)(nil)
	_ generator.MnemonicEngine = (*Engine)(nil)
	_ generator.Master         = (*credentials)(nil)
)

// Engine derives master keys from diagrams or mnemonics, and child credentials from master keys.
type Engine struct {
	stretcher      *diagram.Stretcher
	mnemonicWords  int
	passwordLength int
	emojiLength    int
}

type EngineOpt = func(*Engine) error

// SetMnemonicWords sets the number of words in derived mnemonics, which must be 12, 18, or 24.
func SetMnemonicWords(words int) EngineOpt {
	return func(e *Engine) error {
		switch words {
		case 12, 18, 24:
			e.mnemonicWords = words
			return nil
		default:
			return fmt.Errorf("%w: %d words, expected 12, 18, or 24", ErrInvalidLength, words)
		}
	}
}

// SetPasswordLength sets the length of derived passwords.
func SetPasswordLength(length int) EngineOpt {
	return func(e *Engine) error {
		if length < MinPasswordLength || length > MaxPasswordLength {
			return fmt.Errorf("%w: password length %d", ErrInvalidLength, length)
		}
		e.passwordLength = length
		return nil
	}
}

// SetEmojiLength sets the number of emoji in derived emoji passwords.
func SetEmojiLength(length int) EngineOpt {
	return func(e *Engine) error {
		if length < MinEmojiLength || length > MaxEmojiLength {
			return fmt.Errorf("%w: emoji length %d", ErrInvalidLength, length)
		}
		e.emojiLength = length
		return nil
	}
}

// NewEngine creates an Engine that stretches diagrams with the given Stretcher.
func NewEngine(stretcher *diagram.Stretcher, opts ...EngineOpt) (*Engine, error) {
	if stretcher == nil {
		return nil, errors.New("nil stretcher")
	}
	e := &Engine{
		stretcher:      stretcher,
		mnemonicWords:  DefaultMnemonicWords,
		passwordLength: DefaultPasswordLength,
		emojiLength:    DefaultEmojiLength,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) SimpleMaster(values []string, salt []byte) (string, error) {
	d, err := diagram.Simple(values)
	if err != nil {
		return "", err
	}
	return e.diagramMaster(d, salt)
}

func (e *Engine) ComplexMaster(values []string, salt []byte) (string, error) {
	d, err := diagram.Complex(values)
	if err != nil {
		return "", err
	}
	return e.diagramMaster(d, salt)
}

func (e *Engine) diagramMaster(d diagram.Diagram, salt []byte) (string, error) {
	seed, err := e.stretcher.Seed(d, salt)
	if err != nil {
		return "", err
	}
	m, err := NewMaster(seed)
	if err != nil {
		return "", err
	}
	return m.Serialize(), nil
}

func (e *Engine) MnemonicMaster(mnemonic, passphrase string) (string, error) {
	m, err := FromMnemonic(mnemonic, passphrase)
	if err != nil {
		return "", err
	}
	return m.Serialize(), nil
}

func (e *Engine) ParseMaster(master string) (generator.Master, error) {
	m, err := ParseMaster(master)
	if err != nil {
		return nil, err
	}
	return &credentials{master: m, engine: e}, nil
}

// credentials applies the Engine's settings to a Master.
type credentials struct {
	master *Master
	engine *Engine
}

func (c *credentials) Mnemonic(index uint32) (string, error) {
	return c.master.Mnemonic(c.engine.mnemonicWords, index)
}

func (c *credentials) Xpriv(index uint32) (string, error) {
	return c.master.Xpriv(index)
}

func (c *credentials) WIF(index uint32) (string, string, error) {
	return c.master.WIF(index)
}

func (c *credentials) Password(index uint32) (string, error) {
	return c.master.Password(c.engine.passwordLength, index)
}

func (c *credentials) EmojiPassword(index uint32) (string, error) {
	return c.master.EmojiPassword(c.engine.emojiLength, index)
}
