package core

// MaxSurfacedErrorLen caps how much of a provider error message is shown
// to the user. Azure error bodies can run to several KB of JSON.
const MaxSurfacedErrorLen = 160

// Truncate shortens s to at most MaxSurfacedErrorLen runes, appending an
// ellipsis when anything was cut.
func Truncate(s string) string {
	return TruncateN(s, MaxSurfacedErrorLen)
}

// TruncateN shortens s to at most n runes.
func TruncateN(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
