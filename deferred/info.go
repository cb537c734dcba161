package deferred

import (
	"fmt"

	"github.com/dustin/go-humanize/english"
	"github.com/google/uuid"
)

// Report describes the state carried by a Call.
type Report struct {
	Target          Identity
	Mode            Mode
	ModeLabel       string
	FunctionArity   int
	ArgsStillNeeded int
	ArgsCollected   int
	Chain           uuid.UUID
}

func (r Report) String() string {
	return fmt.Sprintf("%s of %s: %s collected, %s still needed",
		r.ModeLabel,
		r.Target,
		english.Plural(r.ArgsCollected, "argument", ""),
		english.Plural(r.ArgsStillNeeded, "argument", ""),
	)
}

func (c *Call) Info() Report {
	return Report{
		Target:          c.target.id,
		Mode:            c.mode,
		ModeLabel:       c.mode.String(),
		FunctionArity:   c.target.arity,
		ArgsStillNeeded: c.Remaining(),
		ArgsCollected:   len(c.collected),
		Chain:           c.chain,
	}
}

// Info inspects a value produced by Curry, Partial or Apply. Anything other
// than a *Call fails with ErrNotSupported.
func Info(v any) (Report, error) {
	c, ok := v.(*Call)
	if !ok || c == nil {
		return Report{}, fmt.Errorf("%w: %T", ErrNotSupported, v)
	}
	return c.Info(), nil
}
