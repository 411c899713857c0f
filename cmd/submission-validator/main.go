package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/w0lphi/SE2Einzelprojekt/internal/outcome"
	"github.com/w0lphi/SE2Einzelprojekt/internal/pipeline"
	"github.com/w0lphi/SE2Einzelprojekt/internal/remote"
)

// Command-line usage
var usage = `
Usage:
  submission-validator [-timeout DURATION] SUBMISSION_FILE

Validates the given submission XML file against the submission schema and
confirms that the referenced repository and commit exist.

The exit code identifies the result:
  0  submission is valid
  1  no input file given
  2  input file not found (or bundled schema missing)
  3  input file does not conform to the schema
  4  repository could not be confirmed
  5  commit could not be confirmed
  6  unexpected error

Options:
  -timeout DURATION    Per-request timeout for the remote checks (default 10s)
`

func main() {
	timeout := flag.Duration("timeout", remote.DefaultTimeout, "Per-request timeout for the remote checks")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	result := pipeline.New(remote.Timeout(*timeout)).Run(context.Background(), flag.Args())

	if result.Outcome == outcome.Success {
		fmt.Println(result.Outcome.Message())
		os.Exit(result.Outcome.Code())
	}

	fmt.Fprintln(os.Stderr, result.Outcome.Message())
	if result.Cause != nil {
		fmt.Fprintf(os.Stderr, "Caused by: %v\n", result.Cause)
	}
	os.Exit(result.Outcome.Code())
}
