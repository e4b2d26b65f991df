package workers

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/MKhiriev/go-drip-watch/internal/logger"
	"github.com/MKhiriev/go-drip-watch/models"
)

// launchFlags are set per alarm and never forwarded from the daemon's own
// arguments.
var launchFlags = map[string]bool{"page": true, "params": true, "toggle": true}

// ExecLauncher relaunches an executable with the alarm's page and params.
// Children are not bound to the daemon's context.
type ExecLauncher struct {
	executable string
	baseArgs   []string
	logger     *logger.Logger
}

// NewExecLauncher returns a launcher for executable, or for the running
// binary when executable is empty. baseArgs are passed to every child after
// the launch flags have been stripped from them.
func NewExecLauncher(executable string, baseArgs []string, logger *logger.Logger) (*ExecLauncher, error) {
	if executable == "" {
		self, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("error resolving executable: %w", err)
		}
		executable = self
	}
	return &ExecLauncher{
		executable: executable,
		baseArgs:   StripLaunchFlags(baseArgs),
		logger:     logger,
	}, nil
}

// Launch implements [Launcher]. It returns once the child has started.
func (l *ExecLauncher) Launch(_ context.Context, alarm models.Alarm) error {
	cmd := exec.Command(l.executable, l.Args(alarm)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("error starting %s: %w", l.executable, err)
	}

	pid := cmd.Process.Pid
	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Warn().Err(err).Int("pid", pid).Str("page", string(alarm.Page)).Msg("launched entry exited with error")
			return
		}
		l.logger.Debug().Int("pid", pid).Str("page", string(alarm.Page)).Msg("launched entry exited")
	}()
	return nil
}

// Args returns the command line of the child started for alarm.
func (l *ExecLauncher) Args(alarm models.Alarm) []string {
	args := make([]string, 0, len(l.baseArgs)+4)
	args = append(args, l.baseArgs...)
	args = append(args, "-page", string(alarm.Page))
	if alarm.Params != "" {
		args = append(args, "-params", alarm.Params)
	}
	return args
}

// StripLaunchFlags removes -page, -params and -toggle from args, both in
// the "-flag value" and "-flag=value" forms.
func StripLaunchFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, hasValue := flagName(args[i])
		if !launchFlags[name] {
			out = append(out, args[i])
			continue
		}
		if !hasValue && i+1 < len(args) {
			i++
		}
	}
	return out
}

func flagName(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false
	}
	name := strings.TrimLeft(arg, "-")
	if before, _, ok := strings.Cut(name, "="); ok {
		return before, true
	}
	return name, false
}
