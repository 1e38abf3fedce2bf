package generator

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTarget = errors.New("unknown target")

// Target is a kind of child credential.
type Target uint8

const (
	TargetMnemonic Target = iota + 1
	TargetXpriv
	TargetWIF
	TargetPassword
	TargetEmoji
)

var targets = []Target{TargetMnemonic, TargetXpriv, TargetWIF, TargetPassword, TargetEmoji}

// Targets returns every known Target.
func Targets() []Target {
	return append([]Target(nil), targets...)
}

func (t Target) String() string {
	switch t {
	case TargetMnemonic:
		return "mnemonic"
	case TargetXpriv:
		return "xpriv"
	case TargetWIF:
		return "wif"
	case TargetPassword:
		return "pwd"
	case TargetEmoji:
		return "emoji"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseTarget matches name exactly against the names of known targets.
func ParseTarget(name string) (Target, error) {
	for _, t := range targets {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
}

func targetNames() string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// derive produces the host representation of a credential.
func (t Target) derive(m Master, index uint32) (string, error) {
	switch t {
	case TargetMnemonic:
		return m.Mnemonic(index)
	case TargetXpriv:
		return m.Xpriv(index)
	case TargetWIF:
		addr, pk, err := m.WIF(index)
		if err != nil {
			return "", err
		}
		return addr + " " + pk, nil
	case TargetPassword:
		return m.Password(index)
	case TargetEmoji:
		return m.EmojiPassword(index)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTarget, t)
	}
}
