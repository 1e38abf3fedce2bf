/*
Package bip85 derives deterministic child credentials from a BIP32 master key, following BIP85.

Every credential is derived from a hardened path under the BIP85 purpose 83696968'.
The private key k at that path is turned into 64 bytes of entropy with HMAC-SHA512 keyed by "bip-entropy-from-k".
The entropy is then shaped into the requested credential:
  - Mnemonic: m/83696968'/39'/0'/{words}'/{index}', an English BIP39 phrase of 12, 18, or 24 words.
  - Xpriv: m/83696968'/32'/{index}', an extended private key with the first 32 bytes as chain code and the last 32 bytes as key.
  - WIF: m/83696968'/2'/{index}', a compressed mainnet WIF paired with its P2SH-P2WPKH address.
  - Password: m/83696968'/707785'/{length}'/{index}', the RFC 1924 base85 rendering of the entropy, truncated to length.
  - EmojiPassword: m/83696968'/128512'/{length}'/{index}', each entropy byte mapped to one of 64 emoji.

EmojiPassword isn't part of BIP85 itself. Both its application number and its 64 emoji alphabet are specific to this package.

Master keys come from a seed (NewMaster), a BIP39 phrase (FromMnemonic), or an existing serialized key (ParseMaster).
Engine binds this package and package diagram into the derivation engine used by package generator.
*/
package bip85
