// Package lifecycle holds shared shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and mirrors.
const DefaultTimeout = 10 * time.Second
