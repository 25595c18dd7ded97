package melbank

type bankConfig struct {
	liftFreq float64
}

func defaultBankConfig() bankConfig {
	return bankConfig{liftFreq: 0}
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithLiftFreq sets a non-negative frequency offset in Hz that is added to
// the triangle slope denominators. It keeps the weight computation finite
// when a filter center coincides with one of its edges; with the default
// of 0 it is a no-op unless such a degenerate triangle occurs.
func WithLiftFreq(hz float64) Option {
	return func(cfg *bankConfig) {
		if hz >= 0 {
			cfg.liftFreq = hz
		}
	}
}
