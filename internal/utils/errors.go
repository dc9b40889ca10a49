package utils

import "github.com/pkg/errors"

// Common wrapping patterns for errors that carry no source location. The
// original error stays reachable through errors.Cause and errors.Is.

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, err error) error {
	return errors.Wrapf(err, "failed to parse %s", item)
}

// WrapLoadError wraps an error with a "failed to load" message
func WrapLoadError(item string, err error) error {
	return errors.Wrapf(err, "failed to load %s", item)
}

// WrapWriteError wraps an error with a "failed to write" message
func WrapWriteError(item string, err error) error {
	return errors.Wrapf(err, "failed to write %s", item)
}

// WrapRemoveError wraps an error with a "failed to remove" message
func WrapRemoveError(item string, err error) error {
	return errors.Wrapf(err, "failed to remove %s", item)
}

// WrapProcessError wraps an error with a "failed to process" message
func WrapProcessError(item string, err error) error {
	return errors.Wrapf(err, "failed to process %s", item)
}
