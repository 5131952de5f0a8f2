package identikit

import "time"

// config holds the optional knobs collected by New and GenerateKey.
type config struct {
	narration string
	clientID  string
	interval  int
	at        time.Time
	algorithm HashAlgorithm
}

func defaultConfig() config {
	return config{
		interval:  DefaultIntervalMinutes,
		algorithm: DefaultAlgorithm,
	}
}

// Option configures optional identikit fields and derivation parameters.
type Option func(*config)

// WithNarration sets the internal transaction narration (ITN).
//
// An empty narration and an absent narration are the same value: the
// hashed representation does not distinguish them.
//
// Default: ""
func WithNarration(narration string) Option {
	return func(c *config) {
		c.narration = narration
	}
}

// WithClientID sets the client identifier (CID), typically a device or
// session identifier. As with the narration, empty and absent are the
// same value.
//
// Default: ""
func WithClientID(id string) Option {
	return func(c *config) {
		c.clientID = id
	}
}

// WithIntervalMinutes sets the width of the timecode bucket in minutes.
//
// The value is not bounds-checked: buckets are computed by integer floor
// division of the minute-of-hour, and downstream key formats may depend on
// that exact arithmetic for intervals that do not divide 60 evenly.
//
// Default: 15
func WithIntervalMinutes(minutes int) Option {
	return func(c *config) {
		c.interval = minutes
	}
}

// WithTimestamp sets the transaction instant used for timecode derivation.
//
// Only applies to GenerateKey; New ignores it (pass the instant to
// IdempotencyKey instead). The zero time means "now in UTC".
func WithTimestamp(at time.Time) Option {
	return func(c *config) {
		c.at = at
	}
}

// WithAlgorithm sets the digest algorithm used for key derivation.
//
// Only applies to GenerateKey; New ignores it (pass the algorithm to
// IdempotencyKey instead).
//
// Default: SHA256
func WithAlgorithm(algorithm HashAlgorithm) Option {
	return func(c *config) {
		c.algorithm = algorithm
	}
}
