// Command appointment manages an in-memory appointment queue.
//
//	appointment add <name>   enqueue a patient name
//	appointment view         list queued names in arrival order
//
// The queue lives only for the duration of one invocation.
package main

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/huynhanx03/smart-shms/pkg/appointment"
	"github.com/huynhanx03/smart-shms/pkg/datastructs/queue"
	"github.com/huynhanx03/smart-shms/pkg/logger"
	"github.com/huynhanx03/smart-shms/pkg/settings"
)

const appName = "appointment"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run always returns 0; failures are logged, never surfaced as exit codes.
func run(args []string, stdout, stderr io.Writer) int {
	log := logger.Bootstrap(settings.Default(appName), stderr)
	defer func() { _ = log.Sync() }()

	d := appointment.NewDispatcher(queue.NewLinked[string](), stdout, log)
	if err := d.Run(args); err != nil {
		log.Error("command failed", zap.Strings("args", args), zap.Error(err))
	}
	return 0
}
