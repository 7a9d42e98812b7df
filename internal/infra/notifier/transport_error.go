package notifier

import (
	"errors"
	"fmt"
)

type TransportError struct {
	Channel string
	Reason  string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s transport: %s", e.Channel, e.Reason)
	}

	return fmt.Sprintf("%s transport: %s: %v", e.Channel, e.Reason, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func newTransportError(channel, reason string, err error) *TransportError {
	return &TransportError{
		Channel: channel,
		Reason:  reason,
		Err:     err,
	}
}

// FailureReason returns a short description of a failed send.
func FailureReason(err error) string {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Reason
	}

	return err.Error()
}
