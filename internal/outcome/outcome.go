// Package outcome defines the closed set of results a validation run can
// end in, together with the exit code and user facing message of each one.
package outcome

import (
	"errors"
	"fmt"
)

type Outcome int

const (
	Success Outcome = iota
	MissingInputPath
	InputFileNotFound
	SchemaNotFound
	SchemaValidationError
	RepositoryValidationFailed
	CommitValidationFailed
	UnexpectedError
)

// Code returns the process exit code of the outcome. Only the code is
// stable for automation, the messages are free to change.
func (o Outcome) Code() int {
	switch o {
	case Success:
		return 0
	case MissingInputPath:
		return 1
	case InputFileNotFound:
		return 2
	// SchemaNotFound shares exit code 2 with InputFileNotFound, kept as is
	// so existing automation keyed on the exit codes does not break.
	case SchemaNotFound:
		return 2
	case SchemaValidationError:
		return 3
	case RepositoryValidationFailed:
		return 4
	case CommitValidationFailed:
		return 5
	default:
		return 6
	}
}

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case MissingInputPath:
		return "MissingInputPath"
	case InputFileNotFound:
		return "InputFileNotFound"
	case SchemaNotFound:
		return "SchemaNotFound"
	case SchemaValidationError:
		return "SchemaValidationError"
	case RepositoryValidationFailed:
		return "RepositoryValidationFailed"
	case CommitValidationFailed:
		return "CommitValidationFailed"
	default:
		return "UnexpectedError"
	}
}

// Message returns the human readable description of the outcome including a
// troubleshooting hint.
func (o Outcome) Message() string {
	switch o {
	case Success:
		return "Submission is valid.\nRepository and commit were found, you are done."
	case MissingInputPath:
		return "No input file was given.\nPass the path to the submission XML file as the first argument."
	case InputFileNotFound:
		return "The given input file does not exist.\nCheck the path for typos and make sure it points to a regular file."
	case SchemaNotFound:
		return "The bundled submission schema could not be loaded.\nThis is a packaging defect, reinstall the tool or report the issue."
	case SchemaValidationError:
		return "The input file does not conform to the submission schema.\nMake sure the document contains all six required fields inside a single root element."
	case RepositoryValidationFailed:
		return "The repository referenced by the submission could not be confirmed.\nCheck that the repository URL is correct, public and reachable."
	case CommitValidationFailed:
		return "The commit referenced by the submission could not be confirmed.\nCheck that the commit hash exists on the referenced repository and has been pushed."
	default:
		return "An unexpected error occurred during validation.\nRe-run the validation and report the issue if it persists."
	}
}

// Failure pairs an outcome with an optional underlying cause. It is used to
// carry a classified failure out of a pipeline step.
type Failure struct {
	Outcome Outcome
	Cause   error
}

func (f *Failure) Error() string {
	if f.Cause == nil {
		return f.Outcome.String()
	}

	return fmt.Sprintf("%s: %v", f.Outcome, f.Cause)
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// Fail wraps a cause into a Failure carrying the given outcome.
func Fail(o Outcome, cause error) *Failure {
	return &Failure{Outcome: o, Cause: cause}
}

// Result is what a pipeline run hands back to its caller. The caller decides
// how to surface it, the pipeline never terminates the process itself.
type Result struct {
	Outcome Outcome
	Cause   error
}

// Classify maps an error from a pipeline run to a Result. Already typed
// failures are taken as is, anything else becomes UnexpectedError.
func Classify(err error) Result {
	if err == nil {
		return Result{Outcome: Success}
	}

	var failure *Failure
	if errors.As(err, &failure) {
		return Result{Outcome: failure.Outcome, Cause: failure.Cause}
	}

	return Result{Outcome: UnexpectedError, Cause: err}
}
