package fs

import (
	"context"
	"crypto/md5" //nolint:gosec // manifests are MD5 by format, not for security
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.StreamHasher  = (*StreamHasher)(nil)
	_ ports.Fingerprinter = (*Fingerprinter)(nil)
)

// StreamHasher computes MD5 digests in fixed-size chunks.
type StreamHasher struct {
	chunkSize int
}

// NewStreamHasher creates a StreamHasher reading chunkSize bytes at a time.
// Sizes below domain.MinChunkSize are raised to it.
func NewStreamHasher(chunkSize int) *StreamHasher {
	if chunkSize < domain.MinChunkSize {
		chunkSize = domain.MinChunkSize
	}
	return &StreamHasher{chunkSize: chunkSize}
}

// ChunkSize returns the read size of the hasher.
func (h *StreamHasher) ChunkSize() int {
	return h.chunkSize
}

// Hash returns the lowercase hex MD5 of the file at path.
// After every chunk it reports the chunk length and then asks shouldStop; a stop
// request or a cancelled ctx abandons the file with domain.ErrHashStopped.
func (h *StreamHasher) Hash(
	ctx context.Context,
	path string,
	onProgress func(n int64),
	shouldStop func() bool,
) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", ioError(err, "failed to open file", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := md5.New() //nolint:gosec // see import
	buf := make([]byte, h.chunkSize)

	for {
		n, readErr := io.ReadFull(f, buf)
		if n > 0 {
			_, _ = digest.Write(buf[:n])
			if onProgress != nil {
				onProgress(int64(n))
			}
			if (shouldStop != nil && shouldStop()) || ctx.Err() != nil {
				return "", zerr.With(zerr.Wrap(domain.ErrHashStopped, "hashing abandoned"), "path", path)
			}
		}

		switch {
		case readErr == nil:
			continue
		case errors.Is(readErr, io.EOF), errors.Is(readErr, io.ErrUnexpectedEOF):
			return hex.EncodeToString(digest.Sum(nil)), nil
		default:
			return "", ioError(readErr, "failed to read file", path)
		}
	}
}

func ioError(cause error, msg, path string) error {
	err := zerr.Wrap(domain.ErrIO, msg)
	err = zerr.With(err, "path", path)
	return zerr.With(err, "os_error", cause.Error())
}

// Fingerprinter computes xxhash fingerprints of whole files.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint returns the XXHash of a file's content as 16 hex characters.
func (f *Fingerprinter) Fingerprint(path string) (string, error) {
	sum, err := ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}

// ComputeFileHash computes the XXHash of a file's content.
func ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}
