package appointment

import (
	"fmt"
	"io"
	"iter"

	"go.uber.org/zap"

	"github.com/huynhanx03/smart-shms/pkg/common/apperr"
)

const component = "appointment"

// Result lines
const (
	MsgNoArgs  = "No args"
	MsgAdded   = "Added"
	MsgUnknown = "Unknown"
)

// Queue is the FIFO the dispatcher operates on.
type Queue interface {
	Enqueue(name string) bool
	All() iter.Seq[string]
}

// Dispatcher executes appointment commands against a queue it does not own.
type Dispatcher struct {
	queue  Queue
	out    io.Writer
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher. A nil logger disables logging.
func NewDispatcher(q Queue, out io.Writer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		queue:  q,
		out:    out,
		logger: logger.With(zap.String("component", component)),
	}
}

// Run parses args and executes the resulting command.
func (d *Dispatcher) Run(args []string) error {
	return d.Execute(Parse(args))
}

// Execute performs cmd and writes its result lines.
// The only possible error is a failed write.
func (d *Dispatcher) Execute(cmd Command) error {
	d.logger.Debug("execute", zap.Stringer("op", cmd.Op))

	switch cmd.Op {
	case OpNone:
		return d.println(MsgNoArgs)
	case OpAdd:
		d.queue.Enqueue(cmd.Name)
		return d.println(MsgAdded)
	case OpView:
		for name := range d.queue.All() {
			if err := d.println(name); err != nil {
				return err
			}
		}
		return nil
	default:
		return d.println(MsgUnknown)
	}
}

func (d *Dispatcher) println(line string) error {
	if _, err := fmt.Fprintln(d.out, line); err != nil {
		return apperr.MapError(component, err, apperr.CodeOutput, apperr.MsgWriteFailed)
	}
	return nil
}
