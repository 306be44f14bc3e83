// Package process launches the extractor as a separate OS process.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ ports.ProcessLauncher = (*Launcher)(nil)

// waitDelay bounds how long Wait keeps draining output after the child exited,
// should a stray descendant still hold its pipes.
const waitDelay = 2 * time.Second

// Launcher implements ports.ProcessLauncher using os/exec and, optionally, a pty.
// Child output is logged line by line and copied to the vertex carried by the
// start context, if any.
type Launcher struct {
	logger ports.Logger
	usePTY bool
	env    []string
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// WithPTY runs children attached to a pseudo terminal, as the extractor expects
// when it draws its own progress output.
func (l *Launcher) WithPTY(enable bool) *Launcher {
	l.usePTY = enable
	return l
}

// WithEnv appends extra KEY=VALUE pairs to the inherited environment.
func (l *Launcher) WithEnv(env ...string) *Launcher {
	l.env = append(l.env, env...)
	return l
}

// Start resolves path and launches it with args.
func (l *Launcher) Start(ctx context.Context, path string, args []string) (ports.Process, error) {
	executable, err := resolveExecutable(path)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // G204: the extractor path is chosen by the user
	cmd := exec.Command(executable, args...)
	cmd.Env = append(os.Environ(), l.env...)
	cmd.WaitDelay = waitDelay

	stdoutLog := &logWriter{logger: l.logger, level: "info"}
	stderrLog := &logWriter{logger: l.logger, level: "warn"}

	var stdout, stderr io.Writer = stdoutLog, stderrLog
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(stdoutLog, vertex.Stdout())
		stderr = io.MultiWriter(stderrLog, vertex.Stderr())
	}

	p := &process{
		cmd:    cmd,
		done:   make(chan struct{}),
		ioDone: make(chan struct{}),
		flush:  []*logWriter{stdoutLog, stderrLog},
	}

	if l.usePTY {
		ptmx, err := pty.Start(cmd)
		if err != nil {
			return nil, launchError(err, path)
		}
		go func() {
			defer close(p.ioDone)
			defer func() { _ = ptmx.Close() }()
			// A pty merges both streams.
			_, _ = io.Copy(stdout, ptmx)
		}()
	} else {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
		if err := cmd.Start(); err != nil {
			return nil, launchError(err, path)
		}
		close(p.ioDone)
	}

	l.logger.Debug("extractor started", "path", executable, "pid", cmd.Process.Pid)

	go p.wait()
	return p, nil
}

type process struct {
	cmd     *exec.Cmd
	done    chan struct{}
	ioDone  chan struct{}
	flush   []*logWriter
	outcome domain.ExitOutcome
}

func (p *process) wait() {
	err := p.cmd.Wait()
	<-p.ioDone
	for _, w := range p.flush {
		_ = w.Close()
	}
	p.outcome = exitOutcome(p.cmd.ProcessState, err)
	close(p.done)
}

// PID returns the child's process id.
func (p *process) PID() int {
	return p.cmd.Process.Pid
}

// Wait blocks until the child has exited.
func (p *process) Wait() domain.ExitOutcome {
	<-p.done
	return p.outcome
}

// Kill sends SIGKILL to the child's process group, which the child leads since
// it runs in its own session. Killing an exited child is a no-op.
func (p *process) Kill() error {
	select {
	case <-p.done:
		return nil
	default:
	}
	pid := p.cmd.Process.Pid
	err := unix.Kill(-pid, unix.SIGKILL)
	if errors.Is(err, unix.ESRCH) {
		err = unix.Kill(pid, unix.SIGKILL)
	}
	if err != nil && !errors.Is(err, unix.ESRCH) {
		return zerr.With(zerr.Wrap(err, "failed to kill extractor"), "pid", pid)
	}
	return nil
}

func exitOutcome(state *os.ProcessState, err error) domain.ExitOutcome {
	if state == nil {
		return domain.ExitOutcome{Code: domain.SignalledExitCode}
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return domain.ExitOutcome{Code: domain.SignalledExitCode}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return domain.ExitOutcome{Code: exitErr.ExitCode()}
	}
	return domain.ExitOutcome{Code: state.ExitCode()}
}

func launchError(cause error, path string) error {
	err := zerr.With(zerr.Wrap(domain.ErrLaunch, "cannot start extractor"), "path", path)
	return zerr.With(err, "os_error", cause.Error())
}

// resolveExecutable finds path on PATH when it has no directory component and
// checks that the result is an executable regular file.
func resolveExecutable(path string) (string, error) {
	if path == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrLaunch, "no extractor configured"), "path", path)
	}

	if !strings.ContainsRune(path, filepath.Separator) {
		lp, err := exec.LookPath(path)
		if err != nil {
			return "", launchError(err, path)
		}
		return lp, nil
	}

	if err := findExecutable(path); err != nil {
		return "", launchError(err, path)
	}
	return path, nil
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); m.IsRegular() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}

type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}

	if w.level == "info" {
		w.logger.Info(msg, "source", "extractor")
	} else {
		w.logger.Warn(msg, "source", "extractor")
	}
}
