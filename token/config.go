package token

import (
	"fmt"

	"github.com/arloliu/polypack/errs"
	"github.com/arloliu/polypack/format"
	"github.com/arloliu/polypack/internal/options"
	"github.com/arloliu/polypack/section"
)

// Profile is a named set of codec limits.
type Profile uint8

const (
	// ProfileCompact accepts values in [1, 300] repeated up to 1000 times.
	ProfileCompact Profile = 0x1
	// ProfileWide accepts values in [1, 65500] repeated up to 65535 times.
	ProfileWide Profile = 0x2
)

var profileLimits = map[Profile]section.Limits{
	ProfileCompact: {MaxValue: 300, MaxRunLength: 1000},
	ProfileWide:    {MaxValue: 65500, MaxRunLength: 65535},
}

// Limits returns the limits of the profile, and false for an unknown profile.
func (p Profile) Limits() (section.Limits, bool) {
	l, ok := profileLimits[p]
	return l, ok
}

func (p Profile) String() string {
	switch p {
	case ProfileCompact:
		return "Compact"
	case ProfileWide:
		return "Wide"
	default:
		return "Unknown"
	}
}

// Config holds the settings a Codec is built from.
type Config struct {
	limits       section.Limits
	textEncoding format.TextEncoding
	compression  format.CompressionType
	checksum     bool
	cacheSize    int
}

func newDefaultConfig() *Config {
	limits, _ := ProfileCompact.Limits()

	return &Config{
		limits:       limits,
		textEncoding: format.TextStd,
		compression:  format.CompressionNone,
	}
}

// Limits returns the configured value and run length limits.
func (c Config) Limits() section.Limits {
	return c.limits
}

// TextEncoding returns the configured base64 alphabet.
func (c Config) TextEncoding() format.TextEncoding {
	return c.textEncoding
}

// Compression returns the configured envelope compression.
func (c Config) Compression() format.CompressionType {
	return c.compression
}

// Checksum returns whether tokens carry a checksum.
func (c Config) Checksum() bool {
	return c.checksum
}

// Enveloped reports whether tokens are wrapped in an envelope.
func (c Config) Enveloped() bool {
	return c.checksum || c.compression != format.CompressionNone
}

func (c *Config) setProfile(p Profile) error {
	limits, ok := p.Limits()
	if !ok {
		return fmt.Errorf("%w: unknown profile %d", errs.ErrInvalidConfig, p)
	}
	c.limits = limits

	return nil
}

func (c *Config) setTextEncoding(enc format.TextEncoding) error {
	if !enc.IsValid() {
		return fmt.Errorf("%w: invalid text encoding: %v", errs.ErrInvalidConfig, enc)
	}
	c.textEncoding = enc

	return nil
}

func (c *Config) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return fmt.Errorf("%w: invalid compression: %v", errs.ErrInvalidConfig, comp)
	}
	c.compression = comp

	return nil
}

func (c *Config) setCacheSize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: negative decode cache size %d", errs.ErrInvalidConfig, size)
	}
	c.cacheSize = size

	return nil
}

func (c *Config) validate() error {
	return c.limits.Validate()
}

// Option represents a functional option for configuring a Codec.
type Option = options.Option[*Config]

// WithProfile sets both limits from a named profile.
// It is applied in order, so later WithMaxValue or WithMaxRunLength options override it.
func WithProfile(p Profile) Option {
	return options.New(func(c *Config) error {
		return c.setProfile(p)
	})
}

// WithMaxValue sets the inclusive upper bound of input values.
func WithMaxValue(v uint32) Option {
	return options.NoError(func(c *Config) {
		c.limits.MaxValue = v
	})
}

// WithMaxRunLength sets the inclusive upper bound of repeats of one value.
func WithMaxRunLength(v uint32) Option {
	return options.NoError(func(c *Config) {
		c.limits.MaxRunLength = v
	})
}

// WithTextEncoding sets the base64 alphabet and padding of tokens.
func WithTextEncoding(enc format.TextEncoding) Option {
	return options.New(func(c *Config) error {
		return c.setTextEncoding(enc)
	})
}

// WithCompression compresses the token payload inside an envelope.
// format.CompressionNone (the default) writes no envelope unless checksums are enabled.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		return c.setCompression(comp)
	})
}

// WithChecksum appends a 4-byte checksum of the payload inside an envelope.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.checksum = enabled
	})
}

// WithDecodeCache keeps up to size decoded tokens in an LRU cache.
// Zero disables the cache.
func WithDecodeCache(size int) Option {
	return options.New(func(c *Config) error {
		return c.setCacheSize(size)
	})
}
