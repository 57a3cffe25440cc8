package token

import (
	"slices"

	"github.com/arloliu/polypack/compress"
	"github.com/arloliu/polypack/encoding"
	"github.com/arloliu/polypack/internal/options"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Codec encodes lists of values into tokens and decodes them back.
//
// Decoding yields the canonical form of the encoded multiset: values in
// non-increasing order. Original element order is not preserved.
type Codec struct {
	cfg          Config
	payloadCodec compress.Codec
	cache        *lru.Cache[string, []uint32]
}

// NewCodec creates a codec with the given options applied over the defaults
// (ProfileCompact, padded standard base64, no envelope, no cache).
//
// Returns:
//   - *Codec: the configured codec
//   - error: ErrInvalidConfig if the options describe an unusable configuration
func NewCodec(opts ...Option) (*Codec, error) {
	cfg := newDefaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	payloadCodec, err := compress.CreateCodec(cfg.compression, "payload")
	if err != nil {
		return nil, err
	}

	c := &Codec{
		cfg:          *cfg,
		payloadCodec: payloadCodec,
	}

	if cfg.cacheSize > 0 {
		cache, err := lru.New[string, []uint32](cfg.cacheSize)
		if err != nil {
			return nil, err
		}
		c.cache = cache
	}

	return c, nil
}

// Config returns a copy of the codec configuration.
func (c *Codec) Config() Config {
	return c.cfg
}

// Encode packs list into a text token.
//
// Parameters:
//   - list: values in [1, MaxValue], in any order; not modified
//
// Returns:
//   - string: the token, empty for an empty list without envelope
//   - error: ErrOutOfRangeValue or ErrRunTooLong
func (c *Codec) Encode(list []uint32) (string, error) {
	data, err := c.EncodeBytes(list)
	if err != nil {
		return "", err
	}

	return encoding.EncodeText(data, c.cfg.textEncoding), nil
}

// EncodeBytes packs list into the binary form of a token, before base64.
func (c *Codec) EncodeBytes(list []uint32) ([]byte, error) {
	plan, err := encoding.PlanRuns(list, c.cfg.limits)
	if err != nil {
		return nil, err
	}

	payload := encoding.IntToBytes(encoding.EncodePolynomial(plan))
	if !c.cfg.Enveloped() {
		return payload, nil
	}

	return c.seal(payload)
}

// Decode unpacks a text token into the canonical descending list.
//
// Returns:
//   - []uint32: the values in non-increasing order
//   - error: ErrInvalidBase64, ErrCorruptDigit, ErrInvalidEnvelope or ErrChecksumMismatch
func (c *Codec) Decode(text string) ([]uint32, error) {
	if c.cache != nil {
		if values, ok := c.cache.Get(text); ok {
			return slices.Clone(values), nil
		}
	}

	plan, err := c.Inspect(text)
	if err != nil {
		return nil, err
	}

	values := plan.Expand()
	if c.cache != nil {
		c.cache.Add(text, slices.Clone(values))
	}

	return values, nil
}

// DecodeBytes unpacks the binary form of a token into the canonical descending list.
func (c *Codec) DecodeBytes(data []byte) ([]uint32, error) {
	plan, err := c.inspectBytes(data)
	if err != nil {
		return nil, err
	}

	return plan.Expand(), nil
}

// Inspect decodes a text token into its header and runs without expanding them.
func (c *Codec) Inspect(text string) (encoding.Plan, error) {
	data, err := encoding.DecodeText(text, c.cfg.textEncoding)
	if err != nil {
		return encoding.Plan{}, err
	}

	return c.inspectBytes(data)
}

func (c *Codec) inspectBytes(data []byte) (encoding.Plan, error) {
	payload := data
	if c.cfg.Enveloped() {
		var err error
		if payload, err = c.open(data); err != nil {
			return encoding.Plan{}, err
		}
	}

	return encoding.DecodePolynomial(encoding.BytesToInt(payload), c.cfg.limits)
}
