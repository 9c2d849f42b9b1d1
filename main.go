package main

import (
	"fmt"
	"os"

	"github.com/samdoesblogs/sitecfg/cmd"
	"github.com/samdoesblogs/sitecfg/pkg/logger"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, cmd.FormatError(err))
	}

	logger.Sync()
	if code := cmd.ExitCode(err); code != cmd.ExitOK {
		os.Exit(code)
	}
}
