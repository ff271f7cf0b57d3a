package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped handler errors. They are blog-scoped so a
// host multiplexing several command sources can route failures from the
// blog.* message types without matching on message text.
const (
	codeValidationFailed = "BLOG_COMMAND_VALIDATION_FAILED"
	codeCanceled         = "BLOG_COMMAND_CANCELED"
	codeTimedOut         = "BLOG_COMMAND_TIMED_OUT"
	codeContextError     = "BLOG_COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "BLOG_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "blog command message rejected").
		WithTextCode(codeValidationFailed)
}

func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "blog command canceled").
			WithTextCode(codeCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "blog command timed out").
			WithTextCode(codeTimedOut)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "blog command context failed").
			WithTextCode(codeContextError)
	}
}

func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "blog command failed").
		WithTextCode(codeExecutionFailed)
}
