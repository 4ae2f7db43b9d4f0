// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides scripted raw-call doubles for exercising the
// invocation cores without touching real descriptors: each step yields one
// raw result plus the code the pretend call would have produced.
package fake
