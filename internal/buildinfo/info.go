package buildinfo

var (
	// Version se define vía ldflags al compilar.
	Version = "dev"
	// Commit se define vía ldflags al compilar.
	Commit = "none"
	// Date se define vía ldflags al compilar.
	Date = "unknown"
)
