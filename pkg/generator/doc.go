/*
Package generator seals master keys for a host and derives batches of child credentials from them.

The derivation itself is delegated to an Engine, and sealing to a Sealer, so this package only decides what is derived, in which order, and how failures are reported.

# How it works:

An init operation (SimpleInit, ComplexInit, MnemonicInit) asks the Engine for a serialized master key and immediately seals it.
Only the sealed text is returned, so the host never handles the master key in the clear.

Generate opens a sealed master key, parses it with the Engine, and derives one credential per index in the inclusive range [min, max].
Results are positional: result i belongs to index min+i.
Indexes are derived concurrently by a bounded group of workers, but the returned order never depends on completion order.

# Failure modes:
  - An unrecognized target is a soft failure. A warning is logged and an empty result is returned with no error.
  - Every other failure is hard. Open and decode errors from the Sealer are returned as-is, and Engine failures are wrapped in ErrDerivation.
    A failure at any single index fails the whole call, and no partial results are returned.
*/
package generator
