package supervisor

import (
	"errors"
	"fmt"
	"strconv"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/zerr"
)

// FailureMessage renders a supervision error for the user, including the
// exit code, address or path carried as error metadata.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrChildFailure):
		code := metaString(err, "exit_code")
		if code == strconv.Itoa(domain.SignalledExitCode) {
			return "extractor was killed by a signal"
		}
		return fmt.Sprintf("extractor exited with code %s", code)
	case errors.Is(err, domain.ErrChannelTimeout):
		return fmt.Sprintf("extractor event channel did not appear at %s within %s",
			metaString(err, "address"), metaString(err, "timeout"))
	case errors.Is(err, domain.ErrLaunch):
		msg := "cannot start extractor " + metaString(err, "path")
		if cause := metaString(err, "os_error"); cause != "" {
			msg += " (" + cause + ")"
		}
		return msg
	default:
		return err.Error()
	}
}

// metaString returns the first value stored under key along the error chain.
func metaString(err error, key string) string {
	for err != nil {
		var ze *zerr.Error
		if !errors.As(err, &ze) {
			return ""
		}
		if v, ok := ze.Metadata()[key]; ok {
			return fmt.Sprint(v)
		}
		err = ze.Unwrap()
	}
	return ""
}
