// Package lifecycle holds shared start/stop constants for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown of servers and stores.
const DefaultTimeout = 10 * time.Second
