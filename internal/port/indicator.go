package port

// LoadingIndicator is a two-state (shown/hidden) progress display.
type LoadingIndicator interface {
	Show()
	Hide()
	Visible() bool
}
