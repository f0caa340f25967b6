package inline

// RenderOption configures RenderSource and RenderTable.
type RenderOption func(*renderConfig)

type renderConfig struct {
	theme     Theme
	color     bool
	width     int
	positions bool
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{theme: DefaultTheme(), positions: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.theme == nil {
		cfg.theme = DefaultTheme()
	}
	return cfg
}

// WithTheme selects the styles used when color is enabled.
func WithTheme(theme Theme) RenderOption {
	return func(cfg *renderConfig) {
		cfg.theme = theme
	}
}

// WithColor enables or disables ANSI styling.
func WithColor(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.color = enabled
	}
}

// WithWidth limits table rows to width columns. Zero means unlimited.
func WithWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.width = width
	}
}

// WithPositions toggles the position column of RenderTable.
func WithPositions(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.positions = enabled
	}
}
