package testpoint

// Settings holds the options for one report build. It is passed by value and
// never modified by this package.
type Settings struct {
	// UseAuxOrigin measures positions from the board's auxiliary origin
	// instead of the board zero.
	UseAuxOrigin bool
}
