// File: api/doc.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared value types for the hioload-sys raw syscall layer: the per-call
// outcome, the typed OS error, the unrecoverable fault signal and the named
// platform-defect sentinels. Every value here is produced for exactly one
// raw call and consumed immediately by the caller; nothing is pooled,
// cached or persisted.

package api
