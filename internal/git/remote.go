package git

import "strings"

// NormalizeRemoteURL trims the trailing newline git prints and an optional
// ".git" suffix so that "<url>/<commit id>" reads like a web link.
func NormalizeRemoteURL(raw string) string {
	url := strings.TrimRight(raw, " \t\r\n")
	return strings.TrimSuffix(url, ".git")
}
