package billing

// Op identifies which operation a parsed command performs.
type Op uint8

const (
	OpUnknown Op = iota
	OpNone
	OpPush
	OpPop
)

var opNames = [...]string{
	OpUnknown: "unknown",
	OpNone:    "none",
	OpPush:    "push",
	OpPop:     "pop",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return opNames[OpUnknown]
}

// Command is a parsed invocation.
type Command struct {
	Op   Op
	Item string // set for OpPush
}

// Parse maps raw arguments to a Command. Unrecognised input becomes OpUnknown.
func Parse(args []string) Command {
	if len(args) == 0 {
		return Command{Op: OpNone}
	}

	switch {
	case args[0] == "push" && len(args) > 1:
		return Command{Op: OpPush, Item: args[1]}
	case args[0] == "pop":
		return Command{Op: OpPop}
	default:
		return Command{Op: OpUnknown}
	}
}
