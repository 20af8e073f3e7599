// Package errors attaches structured key-value context to errors so it can be logged where the error is handled.
package errors

import "fmt"

type withKeyVals struct {
	error
	keyVals []interface{}
}

func (w withKeyVals) Cause() error  { return w.error }
func (w withKeyVals) Unwrap() error { return w.error }

func (w withKeyVals) Format(s fmt.State, verb rune) {
	if formatter, ok := w.error.(fmt.Formatter); ok {
		formatter.Format(s, verb)
		return
	}

	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), w.error)
}

// With attaches the given key-value pairs to err. An odd trailing key is dropped.
func With(err error, keyVals ...interface{}) error {
	if err == nil {
		return nil
	}

	return withKeyVals{error: err, keyVals: keyVals[:len(keyVals)-len(keyVals)%2]}
}

// KeyVals returns all key-value pairs attached anywhere in the chain of err, outermost first
func KeyVals(err error) []interface{} {
	var keyVals []interface{}
	for err != nil {
		if w, ok := err.(withKeyVals); ok {
			keyVals = append(keyVals, w.keyVals...)
		}

		switch e := err.(type) {
		case interface{ Unwrap() error }:
			err = e.Unwrap()
		case interface{ Cause() error }:
			err = e.Cause()
		default:
			err = nil
		}
	}

	return keyVals
}
