package detector

// Detect exposes the pure detection rule for testing.
var Detect = detect
