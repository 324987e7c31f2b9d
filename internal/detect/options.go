package detect

import "time"

// DefaultTimeout bounds a single version-flag invocation. Generous enough
// for slow first runs of Node-based CLIs, short enough that a hung binary
// does not stall the whole detection pass.
const DefaultTimeout = 5 * time.Second

// Options configures detection behavior.
type Options struct {
	// Timeout is the maximum time to wait for one agent's version command.
	// Zero means DefaultTimeout.
	Timeout time.Duration

	// SkipVersion skips running the version flag entirely. The resulting
	// statuses carry no version information; useful when only presence
	// matters and startup cost of the agent CLIs is unwanted.
	SkipVersion bool
}

// withDefaults returns a copy of o with zero values replaced by defaults.
func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}
