// Package pipeline sequences the validation of a submission file: load,
// schema validation, parse, repository check, commit check.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/w0lphi/SE2Einzelprojekt/internal/outcome"
	"github.com/w0lphi/SE2Einzelprojekt/internal/remote"
	"github.com/w0lphi/SE2Einzelprojekt/internal/schema"
	"github.com/w0lphi/SE2Einzelprojekt/internal/submission"
)

type Pipeline struct {
	checkerOptions []func(*remote.Checker)
}

// New creates a pipeline. The given options are applied to the remote
// checker of each run, every run uses its own checker instance.
func New(checkerOptions ...func(*remote.Checker)) *Pipeline {
	return &Pipeline{checkerOptions: checkerOptions}
}

// Run validates the submission file named by the first argument and returns
// the resulting outcome. It never terminates the process, mapping the
// outcome to an exit code is the caller's responsibility.
func (p *Pipeline) Run(ctx context.Context, args []string) (result outcome.Result) {
	logger := log.WithField("run_id", uuid.NewString())

	defer func() {
		if r := recover(); r != nil {
			result = outcome.Result{Outcome: outcome.UnexpectedError, Cause: fmt.Errorf("panic during validation: %v", r)}
		}
		if result.Outcome == outcome.Success {
			return
		}
		if result.Cause != nil {
			logger.Errorf("validation ended with outcome %s due to: %v", result.Outcome, result.Cause)
		} else {
			logger.Errorf("validation ended with outcome %s", result.Outcome)
		}
	}()

	result = outcome.Classify(p.run(ctx, logger, args))

	return result
}

func (p *Pipeline) run(ctx context.Context, logger *log.Entry, args []string) error {
	if len(args) == 0 {
		return outcome.Fail(outcome.MissingInputPath, nil)
	}
	documentPath := args[0]

	info, err := os.Stat(documentPath)
	if err != nil {
		return outcome.Fail(outcome.InputFileNotFound, err)
	}
	if !info.Mode().IsRegular() {
		return outcome.Fail(outcome.InputFileNotFound, fmt.Errorf("%s is not a regular file", documentPath))
	}
	logger.Infof("located input file at: %s", documentPath)

	if err := schema.ValidateXML(documentPath); err != nil {
		return err
	}
	logger.Info("input file conforms to the submission schema")

	record, err := submission.Parse(documentPath)
	if err != nil {
		// parsing a schema valid file should not fail, this is deliberately
		// not a named outcome and ends up classified as UnexpectedError
		return err
	}
	logger.Infof("parsed submission of %s (%s)", record.Name, record.StudentID)

	checker := remote.NewChecker(p.checkerOptions...)
	defer checker.Close()

	repository, err := checker.CheckRepository(ctx, record.RepositoryURL)
	if err != nil {
		return err
	}
	logger.Infof("confirmed repository at: %s", repository.URL())

	if err := checker.CheckCommit(ctx, repository, record.CommitHash); err != nil {
		return err
	}
	logger.Infof("confirmed commit: %s", record.CommitHash)

	return nil
}
