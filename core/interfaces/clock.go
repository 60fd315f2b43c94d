package interfaces

// Clock supplies the current instant. The "now" and "ago" parsers are the
// only core consumers; injecting it keeps them deterministic under test.
type Clock interface {
	// NowMillis returns the current instant in milliseconds since the
	// Unix epoch.
	NowMillis() int64
}
