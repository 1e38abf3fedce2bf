package generator

// Engine is the deterministic derivation capability used by a Generator.
type Engine interface {
	// SimpleMaster derives a serialized master key from diagram values holding at most one character each.
	SimpleMaster(values []string, salt []byte) (string, error)
	// ComplexMaster derives a serialized master key from diagram values holding arbitrary strings.
	ComplexMaster(values []string, salt []byte) (string, error)
	// ParseMaster parses a serialized master key.
	ParseMaster(master string) (Master, error)
}

// MnemonicEngine is implemented by an Engine that can also derive a master key from a mnemonic.
type MnemonicEngine interface {
	MnemonicMaster(mnemonic, passphrase string) (string, error)
}

// Master derives child credentials by index.
// Implementations must be safe for concurrent use.
type Master interface {
	Mnemonic(index uint32) (string, error)
	Xpriv(index uint32) (string, error)
	WIF(index uint32) (address string, privateKey string, err error)
	Password(index uint32) (string, error)
	EmojiPassword(index uint32) (string, error)
}

// Sealer protects master keys while they're held by the host.
type Sealer interface {
	SealString(content string) (string, error)
	OpenString(text string) (string, error)
}
