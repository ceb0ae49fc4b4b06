package styles

// Severity icons. Plain unicode so they render without a patched font.
var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
	IconPinned  = "•"
)
