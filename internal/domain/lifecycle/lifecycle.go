// Package lifecycle holds shared timeouts for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as server drain
// and database pings.
const DefaultTimeout = 10 * time.Second
