// Package fallback runs ordered alternatives and stops at the first usable result.
package fallback

import (
	"context"
	"errors"

	"go.trai.ch/zerr"
)

// ErrNoAlternative is returned when every alternative failed or produced nothing.
var ErrNoAlternative = zerr.New("no alternative succeeded")

// errEmpty is recorded for alternatives that returned an unusable value.
var errEmpty = zerr.New("empty result")

// Alternative is one way of producing a T.
type Alternative[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// Attempt records how one alternative ended.
type Attempt struct {
	Name string
	Err  error
}

// Result is the outcome of First.
type Result[T any] struct {
	Value    T
	Name     string
	Attempts []Attempt
}

// First runs alternatives in order and returns the first one whose value passes usable.
// Alternatives with a nil Run are skipped. When nothing succeeds the returned error
// joins ErrNoAlternative with the error of every attempt.
func First[T any](ctx context.Context, usable func(T) bool, alternatives ...Alternative[T]) (Result[T], error) {
	var res Result[T]
	var errs []error

	for _, alt := range alternatives {
		if alt.Run == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		value, err := alt.Run(ctx)
		if err == nil && usable != nil && !usable(value) {
			err = zerr.With(errEmpty, "alternative", alt.Name)
		}
		res.Attempts = append(res.Attempts, Attempt{Name: alt.Name, Err: err})

		if err == nil {
			res.Value = value
			res.Name = alt.Name
			return res, nil
		}
		errs = append(errs, zerr.With(zerr.Wrap(err, alt.Name), "alternative", alt.Name))
	}

	return res, errors.Join(append([]error{ErrNoAlternative}, errs...)...)
}
