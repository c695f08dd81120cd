package bridge

// Option configures an Adapter.
type Option func(*Adapter) error

// WithScale fixes the number of device pixels per logical unit. Without it
// the adapter follows a host that implements ScaleSource, and uses 1
// otherwise.
func WithScale(factor float64) Option {
	return func(a *Adapter) error {
		s, err := NewScale(factor)
		if err != nil {
			return err
		}
		a.scale = s
		a.fixedScale = true
		return nil
	}
}

// WithStrictSuppression makes a mismatched suppression release panic instead
// of being logged. Use it in tests and debug builds.
func WithStrictSuppression(strict bool) Option {
	return func(a *Adapter) error {
		a.suppressor.strict = strict
		return nil
	}
}

// WithName sets the name used in debug logs.
func WithName(name string) Option {
	return func(a *Adapter) error {
		a.name = name
		return nil
	}
}
