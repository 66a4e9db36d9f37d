package runner

import (
	"context"

	"github.com/aretw0/brewer/pkg/domain"
)

// Frame is what the operator sees at the start of a turn.
type Frame struct {
	Status  string          `json:"status"`
	State   domain.State    `json:"state"`
	Actions []domain.Action `json:"actions"`
}

// IOHandler defines the strategy for interacting with the operator.
type IOHandler interface {
	// Output presents a frame.
	Output(ctx context.Context, frame Frame) error

	// Input reads the operator's next choice.
	// It returns io.EOF when the input stream is exhausted.
	Input(ctx context.Context) (string, error)

	// Notice shows a message that is not part of a frame (errors, help).
	Notice(ctx context.Context, msg string) error
}

// ContentRenderer transforms markdown before it is printed (e.g. for a TUI).
type ContentRenderer func(string) (string, error)

// HelpText is shown when the operator asks for help.
const HelpText = `# Coffee machine

Pick an action by **number** or by **label** (case does not matter).

* Brewing is only offered while the machine is *Ready*.
* When a deposit is flagged ` + "`EMPTY`" + ` or the dump is flagged ` + "`FULL`" + `, the machine
  requires maintenance before it brews again.
* Type ` + "`quit`" + ` to leave.
`
