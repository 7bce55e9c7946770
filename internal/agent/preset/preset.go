package preset

import (
	"fmt"
	"strings"
)

// ID identifies a tone preset
type ID string

// Built-in preset identifiers
const (
	RespectfulPro ID = "respectful_pro"
	FunnyPlayful  ID = "funny_playful"
	AlphaLite     ID = "alpha_lite"
	Crypto        ID = "crypto"
	GM            ID = "gm"
	GA            ID = "ga"
	GN            ID = "gn"
	BearShout     ID = "bear_shout"
)

// Rotate is the pseudo-preset that cycles through the catalog's rotation order
const Rotate = "rotate"

// Definition is a single tone preset
type Definition struct {
	ID        ID     `yaml:"id"`
	Directive string `yaml:"directive"`
	MinWords  int    `yaml:"min_words"`
	MaxWords  int    `yaml:"max_words"`
	MaxEmoji  int    `yaml:"max_emoji"`
}

// Catalog is the immutable preset table shared by all requests
type Catalog struct {
	presets   map[ID]Definition
	order     []ID
	defaultID ID
	rotation  []ID
}

// NewCatalog validates the definitions and builds a catalog.
// defaultID and every rotation entry must name a defined preset.
func NewCatalog(defs []Definition, defaultID ID, rotation []ID) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog has no presets")
	}

	c := &Catalog{
		presets:   make(map[ID]Definition, len(defs)),
		order:     make([]ID, 0, len(defs)),
		defaultID: defaultID,
		rotation:  append([]ID(nil), rotation...),
	}

	for _, def := range defs {
		def.ID = ID(strings.TrimSpace(string(def.ID)))
		if def.ID == "" {
			return nil, fmt.Errorf("preset with empty id")
		}
		if string(def.ID) == Rotate {
			return nil, fmt.Errorf("preset id %q is reserved", Rotate)
		}
		if _, dup := c.presets[def.ID]; dup {
			return nil, fmt.Errorf("duplicate preset %q", def.ID)
		}
		if strings.TrimSpace(def.Directive) == "" {
			return nil, fmt.Errorf("preset %q has an empty directive", def.ID)
		}
		if def.MinWords < 0 || def.MaxWords < def.MinWords {
			return nil, fmt.Errorf("preset %q has invalid word bounds %d-%d", def.ID, def.MinWords, def.MaxWords)
		}
		c.presets[def.ID] = def
		c.order = append(c.order, def.ID)
	}

	if _, ok := c.presets[defaultID]; !ok {
		return nil, fmt.Errorf("default preset %q is not defined", defaultID)
	}
	if len(c.rotation) == 0 {
		return nil, fmt.Errorf("rotation order is empty")
	}
	for _, id := range c.rotation {
		if _, ok := c.presets[id]; !ok {
			return nil, fmt.Errorf("rotation preset %q is not defined", id)
		}
	}

	return c, nil
}

// Lookup returns the definition for a preset name
func (c *Catalog) Lookup(name string) (Definition, bool) {
	def, ok := c.presets[ID(name)]
	return def, ok
}

// Definition returns the definition for id, or the default preset when id is unknown
func (c *Catalog) Definition(id ID) Definition {
	if def, ok := c.presets[id]; ok {
		return def
	}
	return c.presets[c.defaultID]
}

// DefaultID returns the fallback preset
func (c *Catalog) DefaultID() ID {
	return c.defaultID
}

// Rotation returns a copy of the rotation order
func (c *Catalog) Rotation() []ID {
	return append([]ID(nil), c.rotation...)
}

// All returns every definition in declaration order
func (c *Catalog) All() []Definition {
	defs := make([]Definition, 0, len(c.order))
	for _, id := range c.order {
		defs = append(defs, c.presets[id])
	}
	return defs
}

const brandRule = "No links. No hashtags. Always include @BEARXRPL and $BEAR naturally."

var builtinDefinitions = []Definition{
	{ID: RespectfulPro, MinWords: 18, MaxWords: 34, MaxEmoji: 1,
		Directive: "Concise, respectful. 18-34 words. No emoji unless it fits. " + brandRule},
	{ID: FunnyPlayful, MinWords: 18, MaxWords: 32, MaxEmoji: 1,
		Directive: "Witty and warm. 18-32 words. 1 emoji max. " + brandRule},
	{ID: AlphaLite, MinWords: 20, MaxWords: 36, MaxEmoji: 1,
		Directive: "Practical and value-forward. 20-36 words. 1 emoji max. " + brandRule},
	{ID: Crypto, MinWords: 20, MaxWords: 36, MaxEmoji: 1,
		Directive: "Crypto-native voice: on-chain fluent, pragmatic but hype-aware. 20-36 words. 1 emoji max. " + brandRule +
			" Prefer specifics (liquidity, catalysts, L2s, tokenomics)."},
	{ID: GM, MinWords: 3, MaxWords: 10, MaxEmoji: 1,
		Directive: "Ultra-brief GM or GMGM vibe. 3-10 words. One warm emoji max. " + brandRule},
	{ID: GA, MinWords: 6, MaxWords: 14, MaxEmoji: 1,
		Directive: "Brief GA (good afternoon) reply. 6-14 words. Light, upbeat. One emoji max. " + brandRule},
	{ID: GN, MinWords: 6, MaxWords: 14, MaxEmoji: 1,
		Directive: "Brief GN (good night) sign-off. 6-14 words. Calm, positive. One emoji max. " + brandRule},
	{ID: BearShout, MinWords: 4, MaxWords: 12, MaxEmoji: 1,
		Directive: "Very short rally shout centered on @BEARXRPL and $BEAR. 4-12 words. High energy. 0-1 emoji max. " +
			"No links. No hashtags. Make it feel like a hype ping, not spam."},
}

var builtinRotation = []ID{RespectfulPro, FunnyPlayful, AlphaLite, Crypto}

// Builtin returns the compiled-in catalog
func Builtin() *Catalog {
	c, err := NewCatalog(builtinDefinitions, RespectfulPro, builtinRotation)
	if err != nil {
		panic(fmt.Sprintf("builtin preset catalog: %v", err))
	}
	return c
}
