package app

// Build-time variables set via -ldflags. For example:
//
//	go build -ldflags "-X github.com/large-farva/duim/internal/app.Version=v1.0.0"
var (
	Version   = "dev"
	GoVersion = "unknown"
	BuiltAt   = "unknown"
)

// VersionString is the one-line banner printed by --version.
func VersionString() string {
	return "duim " + Version + " (" + GoVersion + ", built " + BuiltAt + ")"
}
