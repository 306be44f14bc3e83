// Package manifest reads and writes checksum manifests.
//
// A manifest holds one record per line: a 32 character hex MD5 digest, exactly two
// spaces, and a path relative to the data root using forward slashes.
package manifest

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

const maxLineLength = 1 << 20

var _ ports.ManifestParser = (*Parser)(nil)

// Parser implements ports.ManifestParser.
type Parser struct {
	logger ports.Logger
}

// NewParser creates a new Parser.
func NewParser(logger ports.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse reads the manifest at manifestPath. Entry order follows line order and
// duplicates are kept. Lines shorter than domain.MinRecordLength are skipped.
func (p *Parser) Parse(manifestPath, dataRoot string) ([]domain.ManifestEntry, error) {
	f, err := os.Open(manifestPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrManifestNotFound, "failed to open manifest"),
			"path", manifestPath), "os_error", err.Error())
	}
	defer f.Close() //nolint:errcheck // read-only

	var entries []domain.ManifestEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if len(line) < domain.MinRecordLength {
			if strings.TrimSpace(line) != "" {
				p.logger.Warn("skipping short manifest line", "path", manifestPath, "line", lineNo)
			}
			continue
		}

		entry, err := parseRecord(line, dataRoot)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", manifestPath), "line", lineNo)
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrManifestCorrupt, "failed to read manifest"),
			"path", manifestPath), "os_error", err.Error())
	}

	p.logger.Debug("parsed manifest", "path", manifestPath, "entries", len(entries))
	return entries, nil
}

func parseRecord(line, dataRoot string) (domain.ManifestEntry, error) {
	digest := line[:domain.DigestLength]
	sep := line[domain.DigestLength : domain.DigestLength+len(domain.RecordSeparator)]
	rel := line[domain.DigestLength+len(domain.RecordSeparator):]

	if !isHex(digest) {
		return domain.ManifestEntry{}, zerr.Wrap(domain.ErrManifestCorrupt, "digest is not 32 hex characters")
	}
	if sep != domain.RecordSeparator {
		return domain.ManifestEntry{}, zerr.Wrap(domain.ErrManifestCorrupt, "digest must be followed by two spaces")
	}

	return domain.ManifestEntry{
		ExpectedDigest: digest,
		RelativePath:   rel,
		Path:           filepath.Join(dataRoot, filepath.FromSlash(rel)),
	}, nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
