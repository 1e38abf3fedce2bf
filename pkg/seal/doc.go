/*
Package seal provides authenticated encryption of payloads with an ephemeral, process-scoped key.
This uses AES-256-GCM with a 128-bit authentication tag.

# How it works:

A Keyring generates a 32-byte protection key from the OS entropy pool when it's created.
The key is held in memory for the life of the Keyring and is never persisted, logged, or returned.
Default provides a process-wide Keyring that is created on first use and lives until the process exits.

Seal generates a random 12-byte nonce for every call and returns nonce || ciphertext || tag.
Open splits the nonce from the front of the payload and verifies the tag before returning any plaintext.
Any payload that is truncated, tampered with, or sealed with a different Keyring fails with ErrAuthentication.

TextSealer layers a textenc.Encoding over an Encryptor so sealed payloads can cross boundaries that only carry strings.

# Security notes:
  - Sealed payloads are only meaningful to the Keyring that created them. Restarting the process makes every payload sealed by Default unrecoverable.
  - Nonce uniqueness relies on 96-bit random nonces, without a counter or any tracking of used nonces.
    This is a probabilistic guarantee that holds for a single process with a bounded number of Seal calls (well under 2^32 per key), not a proof.
*/
package seal
