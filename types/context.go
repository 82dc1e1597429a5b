package types

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands
type AppContext struct {
	Version string
}

// VersionOrDefault returns the context version, or DefaultVersion when the
// context is nil or carries no version.
func (ctx *AppContext) VersionOrDefault() string {
	if ctx == nil || ctx.Version == "" {
		return DefaultVersion
	}
	return ctx.Version
}
