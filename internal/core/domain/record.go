package domain

import "time"

// VerificationRecord is the ledger entry for the last verification of a manifest.
type VerificationRecord struct {
	// Fingerprint is the content hash of the manifest file and keys the record.
	Fingerprint   string      `json:"fingerprint"`
	ManifestPath  string      `json:"manifest_path"`
	DataRoot      string      `json:"data_root"`
	JobID         string      `json:"job_id"`
	Outcome       OutcomeKind `json:"outcome"`
	FailedPath    string      `json:"failed_path,omitempty"`
	VerifiedBytes int64       `json:"verified_bytes"`
	TotalBytes    int64       `json:"total_bytes"`
	Timestamp     time.Time   `json:"timestamp"`
}

// Covers reports whether the record proves a successful verification of the same data root.
func (r *VerificationRecord) Covers(dataRoot string) bool {
	return r != nil && r.Outcome == OutcomeSucceeded && r.DataRoot == dataRoot
}
