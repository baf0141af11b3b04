package statusbar

// GetHints returns the keybinding hints for the current editing mode
func GetHints(sourceMode bool) string {
	if sourceMode {
		return "ctrl+e: apply source  tab: next region  q: quit"
	}
	return "ctrl+e: edit source  b: bold  i: italic  s: save  q: quit"
}
