package sim

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/hhcho/snpsim/scalars"
)

// Config drives one simulation run, decoded from a toml file.
// Zero values fall back to the reference defaults (recessive-by-recessive
// model, 1000/1000 samples, MAF 0.30, seed 1855).
type Config struct {
	Eff1Encoding string    `toml:"eff1_encoding"`
	Eff2Encoding string    `toml:"eff2_encoding"`
	Eff1Custom   []float64 `toml:"eff1_custom"`
	Eff2Custom   []float64 `toml:"eff2_custom"`

	Baseline    float64 `toml:"baseline"`
	Main1       float64 `toml:"main_effect_1"`
	Main2       float64 `toml:"main_effect_2"`
	Interaction float64 `toml:"interaction"`

	Snp1ID  string   `toml:"snp1_id"`
	Snp1Ref string   `toml:"snp1_ref"`
	Snp1Alt []string `toml:"snp1_alt"`
	Snp2ID  string   `toml:"snp2_id"`
	Snp2Ref string   `toml:"snp2_ref"`
	Snp2Alt []string `toml:"snp2_alt"`

	RandomSeed  int64   `toml:"random_seed"`
	NumCases    int     `toml:"num_cases"`
	NumControls int     `toml:"num_controls"`
	Maf1        float64 `toml:"maf1"`
	Maf2        float64 `toml:"maf2"`
	MinP        float64 `toml:"min_p"`

	OutFile     string `toml:"output_file"`
	MemoryLimit uint64 `toml:"memory_limit"`
	Debug       bool   `toml:"debug"`
}

func LoadConfig(path string) (*Config, error) {
	config := new(Config)
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("decoding %s: %v", path, err)
	}
	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Eff1Encoding == "" && len(c.Eff1Custom) == 0 {
		c.Eff1Encoding = "RECESSIVE"
	}
	if c.Eff2Encoding == "" && len(c.Eff2Custom) == 0 {
		c.Eff2Encoding = "RECESSIVE"
	}
	if c.Main1 == 0 && c.Main2 == 0 && c.Interaction == 0 {
		c.Main1, c.Main2 = 1, 1
	}
	if c.RandomSeed == 0 {
		c.RandomSeed = DefaultSeed
	}
	if c.NumCases == 0 {
		c.NumCases = 1000
	}
	if c.NumControls == 0 {
		c.NumControls = 1000
	}
	if c.Maf1 == 0 {
		c.Maf1 = 0.30
	}
	if c.Maf2 == 0 {
		c.Maf2 = 0.30
	}
	if c.MinP == 0 {
		c.MinP = DefaultMinP
	}
}

func (c *Config) effect(name string, custom []float64, which string) (EffectEncoding, error) {
	if len(custom) > 0 {
		if name != "" {
			return EffectEncoding{}, fmt.Errorf("%s: give either a named encoding or a custom tuple, not both", which)
		}
		if len(custom) != 3 {
			return EffectEncoding{}, fmt.Errorf("%s: custom effect encoding needs exactly 3 values, got %d", which, len(custom))
		}
		return EffectEncoding{custom[0], custom[1], custom[2]}, nil
	}
	enc, err := EncodingByName(name)
	if err != nil {
		return EffectEncoding{}, fmt.Errorf("%s: %v", which, err)
	}
	return enc, nil
}

func (c *Config) variant(id, ref string, alt []string) (*scalars.Variant, error) {
	if id == "" && ref == "" && len(alt) == 0 {
		return nil, nil // synthesized by the simulation constructor
	}
	return scalars.NewVariant(id, ref, alt)
}

// BuildSimulation assembles the configured BiallelicSimulation.
func (c *Config) BuildSimulation() (*BiallelicSimulation, error) {
	eff1, err := c.effect(c.Eff1Encoding, c.Eff1Custom, "eff1")
	if err != nil {
		return nil, err
	}
	eff2, err := c.effect(c.Eff2Encoding, c.Eff2Custom, "eff2")
	if err != nil {
		return nil, err
	}
	snp1, err := c.variant(c.Snp1ID, c.Snp1Ref, c.Snp1Alt)
	if err != nil {
		return nil, err
	}
	snp2, err := c.variant(c.Snp2ID, c.Snp2Ref, c.Snp2Alt)
	if err != nil {
		return nil, err
	}
	s, err := FromModel(eff1, eff2, c.Baseline, c.Main1, c.Main2, c.Interaction, snp1, snp2, c.RandomSeed)
	if err != nil {
		return nil, err
	}
	s.MinP = c.MinP
	return s, nil
}
