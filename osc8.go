package spanml

import (
	"os"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

func osc8Link(url, text string) string {
	return osc8Start + url + "\x1b\\" + text + osc8End
}

// DetectOSC8Support reports whether the current environment likely
// renders OSC 8 hyperlinks. Set OSC8=0 or OSC8=1 to override detection.
func DetectOSC8Support() bool {
	switch os.Getenv("OSC8") {
	case "0":
		return false
	case "1":
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode", "ghostty":
		return true
	}
	if os.Getenv("WT_SESSION") != "" || os.Getenv("DOMTERM") != "" {
		return true
	}
	termName := strings.ToLower(os.Getenv("TERM"))
	for _, name := range []string{"kitty", "foot", "wezterm", "ghostty"} {
		if strings.Contains(termName, name) {
			return true
		}
	}
	return false
}
