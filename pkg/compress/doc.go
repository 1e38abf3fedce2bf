/*
Package compress provides reversible compression of arbitrary byte sequences using raw deflate (RFC 1951).

Compressed output carries no container header and no checksum.
A consumer must already know that a payload is compressed, since the format can't be reliably inferred from the bytes alone.

# General guidelines:
  - Decompress will fail with ErrFormat when given input that is truncated, corrupted, or was never compressed.
    Some corruption of the literal data within a valid stream can't be detected, since there is no checksum.
  - No size limit is enforced by this package. Callers should bound input size when it comes from an untrusted source.
  - A Compressor is safe for concurrent use. Writers are pooled per Compressor to reduce allocations.
*/
package compress
