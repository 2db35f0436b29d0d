// Package cli is the interactive chat client.
//
// It wires the configuration, the local SQLite replica and the gRPC client
// into a REPL. Every command works against the replica; sync pulls from and
// pushes to the server, and watch keeps a ShouldSync stream open so the
// replica follows other sessions in the background. Files sent with attach
// are encrypted locally and only the ciphertext is uploaded.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
