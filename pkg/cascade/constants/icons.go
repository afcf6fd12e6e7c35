package constants

// Built-in icon names. The icon package ships SVG sources for each of these.
const (
	ArrowLeft  = "arrow_left"  // Back header affordance
	ArrowRight = "arrow_right" // Trailing marker on submenu rows

	Language    = "language"
	FileCopy    = "file_copy"
	Share       = "share"
	DeleteSweep = "delete_sweep"
	Done        = "done"
	Close       = "close"
)
