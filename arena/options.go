package arena

// Config carries the configuration for an arena. The zero value is the default
// configuration, it does not preallocate any slots.
type Config struct {
	Capacity int
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// Arena instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is an arena configuration option reserving room for the given
// number of slots, so that the first allocations do not grow the storage.
//
// Negative values are ignored.
func Capacity(n int) Option {
	return option(func(config *Config) {
		if n >= 0 {
			config.Capacity = n
		}
	})
}
