// Package lifecycle defines shared timing values for start/stop hooks and detached work.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks (ping, shutdown) and detached side effects.
const DefaultTimeout = 10 * time.Second
