package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil/flags"

	"sweatlog/internal/cli"
	"sweatlog/internal/config"
	"sweatlog/internal/core"
	"sweatlog/internal/services"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one invocation. Stdout carries only the result line or the
// usage banner; diagnostics go to stderr. Exit code 1 is reserved for
// pipeline failures; asking for help or supplying no files exits 0.
func run(args []string) int {
	cli.LoadEnvFile()
	cfg := config.Load()
	logger := cli.SetupLogger(cfg)

	fs := flag.NewFlagSet("sweatlog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	var start, end string
	fs.StringVar(&start, "s", "", "inclusive start date ("+core.DatePattern+")")
	fs.StringVar(&start, "start", "", "inclusive start date ("+core.DatePattern+")")
	fs.StringVar(&end, "e", "", "inclusive end date ("+core.DatePattern+")")
	fs.StringVar(&end, "end", "", "inclusive end date ("+core.DatePattern+")")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(fs)
			return 0
		}
		fmt.Printf("Exception encountered - %v\n", err)
		return 1
	}

	paths := fs.Args()
	if len(paths) == 0 {
		printUsage(fs)
		return 0
	}

	svc := services.NewSummaryService(logger)
	total, err := svc.Summarize(paths, start, end)
	if err != nil {
		logger.Debug("summary failed", "error", err)
		fmt.Printf("Exception encountered - %v\n", err)
		return 1
	}
	fmt.Printf("Your workout summary is: %d\n", total)
	return 0
}

func printUsage(fs *flag.FlagSet) {
	fmt.Printf("Usage: sweatlog [flags] <logfile> [<logfile>...]\n\nFlags:\n%s", flags.Defaults(fs))
}
