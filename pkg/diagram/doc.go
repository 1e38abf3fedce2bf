/*
Package diagram turns a visual entropy source into seed material for a master key.

A Diagram is a 7x7 grid of cells filled row-major from a flat list of values.
Empty values leave a cell empty, which still matters since the position of every filled cell is part of the secret.

# Diagram kinds:
  - Simple diagrams keep at most one character per cell, the first character of each value.
  - Complex diagrams keep each value as-is, so a cell may hold an arbitrary string.

The same values produce different secrets depending on the kind.

# How it works:

A Diagram is encoded canonically with CBOR core deterministic encoding: the kind, the grid dimensions, and the index and value of every filled cell.
That encoding is stretched with scrypt into a 64-byte seed by a Stretcher.
The salt passed to scrypt is the Stretcher's parameters (encoded with binmap) followed by the caller's salt, so seeds derived with different parameters never coincide.

# General guidelines:
  - Both the diagram and the salt are required to recreate a seed. Losing either means losing every key derived from the seed.
  - The Stretcher settings are part of the derivation. Changing SetIterations, SetCPUCost, or SetRelativeBlockSize yields a different seed for the same diagram.
  - If you're not an expert, then don't use SetIterations, SetCPUCost, or SetRelativeBlockSize.
*/
package diagram
