/*
Package shield is the surface a host program uses to protect content and derive credentials.

A Shield is built once from a config.Config, which fixes the text encoding, compression level, stretch parameters, and worker count for its lifetime.
Sealed output is bound to the process: unless WithKeyring is used, every Shield in a process shares one ephemeral Keyring, and nothing sealed by one process can be opened by another.
*/
package shield
