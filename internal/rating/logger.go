package rating

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger sets the logger used for configuration diagnostics.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "rating").Logger()
}
