// Command billing manages an in-memory billing stack.
//
//	billing push <item>   push a bill item
//	billing pop           print and remove the most recent item
//
// The stack lives only for the duration of one invocation.
package main

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/huynhanx03/smart-shms/pkg/billing"
	"github.com/huynhanx03/smart-shms/pkg/datastructs/stack"
	"github.com/huynhanx03/smart-shms/pkg/logger"
	"github.com/huynhanx03/smart-shms/pkg/settings"
)

const appName = "billing"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run always returns 0; failures are logged, never surfaced as exit codes.
func run(args []string, stdout, stderr io.Writer) int {
	log := logger.Bootstrap(settings.Default(appName), stderr)
	defer func() { _ = log.Sync() }()

	d := billing.NewDispatcher(stack.New[string](), stdout, log)
	if err := d.Run(args); err != nil {
		log.Error("command failed", zap.Strings("args", args), zap.Error(err))
	}
	return 0
}
