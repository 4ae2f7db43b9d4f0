// File: sys/doc.go
// Package sys
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw syscall invocation layer for hioload-sys. Each exported operation
// issues exactly one OS call (plus the mandatory retry on an interrupted
// call) and reports a typed api.Outcome or a typed api.OsError. Platform
// divergence (linux/darwin/windows) is resolved at build time through
// per-platform alias files; nothing above this package branches on GOOS.
//
// The layer holds no locks and no cross-call state. Would-block is a
// control-flow signal, never an error. Codes that indicate a defect in the
// calling layer (closed descriptor, bad buffer address) panic with
// *api.Fault instead of returning.

package sys
