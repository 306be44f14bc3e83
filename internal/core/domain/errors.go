package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when the checksum manifest cannot be opened.
	ErrManifestNotFound = zerr.New("checksum manifest not found")

	// ErrManifestCorrupt is returned when a manifest line is not a valid checksum record.
	ErrManifestCorrupt = zerr.New("checksum manifest is corrupt")

	// ErrFileMissing is returned when a manifest entry does not name a readable regular file.
	ErrFileMissing = zerr.New("file listed in manifest is missing")

	// ErrIO is returned when a file cannot be opened or read while hashing.
	ErrIO = zerr.New("i/o error")

	// ErrCorruptFile is returned when a file's digest does not match the manifest.
	ErrCorruptFile = zerr.New("file is corrupt")

	// ErrCancelled is returned when an operation stops because cancellation was requested.
	ErrCancelled = zerr.New("operation cancelled")

	// ErrHashStopped is returned by the hasher when its stop hook asked it to abandon a file.
	ErrHashStopped = zerr.New("hashing stopped")

	// ErrJobNotIdle is returned when a verification job is run more than once.
	ErrJobNotIdle = zerr.New("verification job already started")

	// ErrVerificationFailed is returned by the CLI when a verification run did not succeed.
	ErrVerificationFailed = zerr.New("verification failed")

	// ErrLaunch is returned when the extractor cannot be started.
	ErrLaunch = zerr.New("failed to launch extractor")

	// ErrChildFailure is returned when the extractor exits with a nonzero code.
	ErrChildFailure = zerr.New("extractor exited with failure")

	// ErrChannelTimeout is returned when the extractor never exposes its event channel in time.
	ErrChannelTimeout = zerr.New("timed out waiting for extractor event channel")

	// ErrNoProcessHandle is returned when an abort is requested without a known child process.
	ErrNoProcessHandle = zerr.New("no process handle for extractor")

	// ErrInvalidConfig is returned when configuration values are out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
