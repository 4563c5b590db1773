package hook

import "fmt"

// Interface is a try/catch/finally style execution guard. The progress
// engine uses it to run a step attempt so that a panicking step or listener
// is handled the same way as one returning an error.
type Interface interface {
	// Try runs the guarded work and returns its error, if any.
	Try() error

	// Catch is invoked with the error from Try (or the error synthesized
	// from a recovered panic). Its return value is the final error of Call.
	Catch(err error) error

	// Finally runs after Try and Catch, regardless of outcome.
	Finally()
}

func Call(hook Interface) error {
	if hook == nil {
		return fmt.Errorf("hook cannot be nil")
	}

	defer hook.Finally()

	if tryErr := tryGuarded(hook); tryErr != nil {
		return hook.Catch(tryErr)
	}
	return nil
}

// tryGuarded runs Try, converting a panic into an error. Only Try is
// guarded: Catch runs outside the recover, so a panic raised there unwinds
// to the caller without invoking Catch a second time.
func tryGuarded(hook Interface) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic occurred during hook execution: %v", r)
		}
	}()
	return hook.Try()
}
