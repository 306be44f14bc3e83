package supervisor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/engine/supervisor"
	"go.trai.ch/zerr"
)

func TestFailureMessage(t *testing.T) {
	timeout := zerr.With(zerr.With(zerr.Wrap(domain.ErrChannelTimeout, "extractor event channel did not appear"),
		"address", "unix:///run/vlr.sock"), "timeout", "5s")
	launch := zerr.With(zerr.With(zerr.Wrap(domain.ErrLaunch, "cannot start extractor"),
		"path", "/opt/extract"), "os_error", "permission denied")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"exit code", domain.ExitOutcome{Code: 3}.Err(), "extractor exited with code 3"},
		{"signalled", domain.ExitOutcome{Code: domain.SignalledExitCode}.Err(), "extractor was killed by a signal"},
		{"timeout", timeout, "extractor event channel did not appear at unix:///run/vlr.sock within 5s"},
		{"launch", launch, "cannot start extractor /opt/extract (permission denied)"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, supervisor.FailureMessage(tt.err))
		})
	}
}
