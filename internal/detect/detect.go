package detect

import (
	"context"
	"fmt"

	"github.com/acpkit/agentscout/internal/agent"
	"golang.org/x/sync/errgroup"
)

// Detector runs agent probes. The zero value is not usable; construct one
// with New. A Detector holds no mutable state and is safe for concurrent
// use from any number of goroutines.
type Detector struct {
	opts Options
}

// New returns a Detector with the given options.
func New(opts Options) *Detector {
	return &Detector{opts: opts.withDefaults()}
}

// Detect probes a single agent kind and returns its status. Every failure
// mode is captured inside the status; Detect never returns an error.
func (d *Detector) Detect(ctx context.Context, kind agent.Kind) Status {
	return d.safeProbe(ctx, kind)
}

// DetectAll probes every registered agent kind concurrently and returns a
// complete Result. Each probe is fully isolated: a failure, panic, or
// timeout in one kind's probe is converted to a status for that kind alone
// and never affects another probe. DetectAll waits for all probes and the
// returned map always contains every key from agent.All().
func (d *Detector) DetectAll(ctx context.Context) Result {
	return d.DetectKinds(ctx, agent.All())
}

// DetectKinds probes the given kinds concurrently with the same isolation
// guarantees as DetectAll. The returned map contains exactly the requested
// kinds.
func (d *Detector) DetectKinds(ctx context.Context, kinds []agent.Kind) Result {
	statuses := make([]Status, len(kinds))

	// One goroutine per kind; the set is small and fixed so no cap is
	// needed. Each goroutine writes only its own slot, so the slice
	// needs no synchronization beyond the join.
	var g errgroup.Group
	for i, kind := range kinds {
		g.Go(func() error {
			statuses[i] = d.safeProbe(ctx, kind)
			return nil
		})
	}
	_ = g.Wait() // probes never return errors; faults live in the statuses

	result := make(Result, len(kinds))
	for i, kind := range kinds {
		result[kind] = statuses[i]
	}
	return result
}

// safeProbe wraps probe with panic recovery so a fault in one probe is
// downgraded to StateProbeFailed instead of tearing down its siblings.
func (d *Detector) safeProbe(ctx context.Context, kind agent.Kind) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			// Render the kind numerically: DisplayName panics for the
			// unregistered kinds this handler exists to contain.
			status = Status{
				State: StateProbeFailed,
				Err:   fmt.Errorf("probe for agent %d panicked: %v", int(kind), r),
			}
		}
	}()
	return d.probe(ctx, kind)
}

// Detect probes a single agent with default options.
func Detect(ctx context.Context, kind agent.Kind) Status {
	return New(Options{}).Detect(ctx, kind)
}

// DetectAll probes all registered agents with default options.
func DetectAll(ctx context.Context) Result {
	return New(Options{}).DetectAll(ctx)
}
