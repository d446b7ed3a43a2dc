package billing

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/huynhanx03/smart-shms/pkg/common/apperr"
)

const component = "billing"

// Result lines
const (
	MsgPushed  = "Pushed"
	MsgUnknown = "Unknown"
)

// Stack is the LIFO the dispatcher operates on.
type Stack interface {
	Push(item string)
	Pop() (string, bool)
}

// Dispatcher executes billing commands against a stack it does not own.
type Dispatcher struct {
	stack  Stack
	out    io.Writer
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher. A nil logger disables logging.
func NewDispatcher(s Stack, out io.Writer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		stack:  s,
		out:    out,
		logger: logger.With(zap.String("component", component)),
	}
}

// Run parses args and executes the resulting command.
func (d *Dispatcher) Run(args []string) error {
	return d.Execute(Parse(args))
}

// Execute performs cmd and writes exactly one result line.
// Popping an empty stack writes an empty line.
func (d *Dispatcher) Execute(cmd Command) error {
	d.logger.Debug("execute", zap.Stringer("op", cmd.Op))

	switch cmd.Op {
	case OpNone:
		return d.println("")
	case OpPush:
		d.stack.Push(cmd.Item)
		return d.println(MsgPushed)
	case OpPop:
		item, ok := d.stack.Pop()
		if !ok {
			d.logger.Debug("pop on empty stack")
		}
		return d.println(item)
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
