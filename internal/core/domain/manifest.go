package domain

const (
	// DigestLength is the number of hex characters in an MD5 digest.
	DigestLength = 32

	// RecordSeparator separates the digest from the path in a manifest line.
	RecordSeparator = "  "

	// MinRecordLength is the shortest line that can hold a digest, the separator and a path.
	MinRecordLength = DigestLength + len(RecordSeparator) + 1

	// DefaultManifestName is the file name of the manifest under the mission data root.
	DefaultManifestName = "Checksums"
)

// ManifestEntry is one record of a checksum manifest.
type ManifestEntry struct {
	// ExpectedDigest is the hex MD5 digest recorded in the manifest.
	ExpectedDigest string
	// RelativePath is the path as written in the manifest, relative to the data root.
	RelativePath string
	// Path is RelativePath resolved against the data root.
	Path string
}
