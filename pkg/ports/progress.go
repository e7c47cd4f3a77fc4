package ports

// Progress receives one Advance per completed frame.
// It is purely observational.
type Progress interface {
	// Start announces the expected number of frames (0 if unknown).
	Start(total int)

	// Advance records one completed frame.
	Advance()

	// Finish ends the report.
	Finish()
}
