// Command goprolog is the REPL driver for the SLD-resolution interpreter in
// pkg/logic. It loads a program — from a file argument, or a built-in
// demonstration program when none is given — and drives an interactive
// query loop against it (§6.3).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/goprolog/internal/demo"
	"github.com/gitrdm/goprolog/internal/repl"
	"github.com/gitrdm/goprolog/pkg/logic"
	"github.com/gitrdm/goprolog/pkg/parser"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the testable body of main: it takes its I/O and argv explicitly so
// tests can drive it without touching the real process streams.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	log := logrus.New()
	log.SetOutput(errOut)

	root := newRootCommand(out, errOut)
	root.SetArgs(args)

	// §6.3 pins -h, --help, and -? to usage-and-exit-1, which differs from
	// cobra's own --help handling (exit 0). Handle the three spellings
	// ourselves before invoking cobra, rather than fighting its default
	// help command for a non-default exit code.
	for _, a := range args {
		if a == "-h" || a == "--help" || a == "-?" {
			fmt.Fprint(errOut, root.UsageString())
			return 1
		}
	}

	var programFile string
	root.RunE = func(cmd *cobra.Command, cmdArgs []string) error {
		if len(cmdArgs) == 1 {
			programFile = cmdArgs[0]
		}
		return nil
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	src := demo.Program
	if programFile != "" {
		data, err := os.ReadFile(programFile)
		if err != nil {
			log.WithError(err).WithField("file", programFile).Error("failed to read program file")
			return 1
		}
		src = string(data)
	}

	rules, err := parser.ParseProgram(src)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	db := logic.NewDatabase()
	for _, r := range rules {
		db.Add(r)
	}

	return repl.New(db, in, out, log).Run()
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:                   "goprolog [program-file]",
		Short:                 "A minimal SLD-resolution interpreter for Horn-clause programs",
		Args:                  cobra.MaximumNArgs(1),
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	return root
}
