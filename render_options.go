package spanml

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8  bool
	theme Theme
}

// WithOSC8 enables or disables OSC 8 hyperlinks for anchors.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithTheme sets the fallback theme for unstyled elements.
func WithTheme(t Theme) RenderOption {
	return func(cfg *renderConfig) {
		if t != nil {
			cfg.theme = t
		}
	}
}
