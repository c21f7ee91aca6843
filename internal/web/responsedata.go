package web

import "errors"

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

// errorMessages flattens joined errors into the individual messages the
// API reports, one string per leaf error.
func errorMessages(err error) []string {
	messages := make([]string, 0, 1)
	for _, err := range unwrap(err) {
		messages = append(messages, err.Error())
	}
	return messages
}
