package tui

import "go.trai.ch/vlr/internal/core/domain"

// MsgProgress updates the caption and the overall fraction.
type MsgProgress struct {
	Label    string
	Fraction float64
}

// MsgNotification carries a status message from the extractor.
type MsgNotification struct {
	Text string
}

// MsgError carries a failure message.
type MsgError struct {
	Message string
}

// MsgDone carries the final outcome of a verification run.
type MsgDone struct {
	Outcome domain.Outcome
}
