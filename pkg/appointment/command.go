package appointment

// Op identifies which operation a parsed command performs.
type Op uint8

const (
	OpUnknown Op = iota
	OpNone
	OpAdd
	OpView
)

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpView:
		return "view"
	default:
		return "unknown"
	}
}

// Command is a parsed invocation.
type Command struct {
	Op   Op
	Name string // set for OpAdd
}

// Parse maps raw arguments to a Command. It never fails: input that does
// not match a known shape becomes OpUnknown.
func Parse(args []string) Command {
	if len(args) == 0 {
		return Command{Op: OpNone}
	}

	switch args[0] {
	case "add":
		if len(args) > 1 {
			return Command{Op: OpAdd, Name: args[1]}
		}
	case "view":
		return Command{Op: OpView}
	}
	return Command{Op: OpUnknown}
}
