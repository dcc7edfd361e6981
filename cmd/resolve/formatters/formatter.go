package formatters

// RenderOptions contains optional parameters for rendering an asset.
type RenderOptions struct {
	// Label is an optional title for the rendered graph.
	Label string
}

// Formatter renders a resolved asset.
type Formatter interface {
	// Format converts the asset to its textual representation.
	Format(a *Asset, opts RenderOptions) (string, error)
	// GenerateURL returns a link to an online viewer for output, if the
	// format has one.
	GenerateURL(output string) (string, bool)
}
