package system

import "github.com/atotto/clipboard"

// CopyToOSClipboard mirrors yanked text to the system clipboard.
// Best-effort: headless environments have no clipboard, so failures are
// reported but never fatal.
func CopyToOSClipboard(text string) error {
	if clipboard.Unsupported {
		return nil
	}
	return clipboard.WriteAll(text)
}
