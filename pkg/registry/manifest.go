package registry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is a supplementary descriptor set, loadable from YAML, that
// extends an Env's registries beyond the built-in vanilla 1.2.5 set —
// generalizing the teacher's JSON server-config load idiom
// (internal/server/config.Config) to registry bootstrap.
type Manifest struct {
	Blocks []ManifestBlock `yaml:"blocks"`
	Biomes []ManifestBiome `yaml:"biomes"`
}

// ManifestBlock describes one extra block registration.
type ManifestBlock struct {
	Namespace string `yaml:"namespace"`
	Key       string `yaml:"key"`
	LegacyID  uint16 `yaml:"legacy_id"`
	Meta      uint8  `yaml:"meta"`
}

// ManifestBiome describes one extra biome registration.
type ManifestBiome struct {
	Namespace       string `yaml:"namespace"`
	Key             string `yaml:"key"`
	LegacyID        uint8  `yaml:"legacy_id"`
	BaseTemperature float64 `yaml:"base_temperature"`
	BaseRainfall    float64 `yaml:"base_rainfall"`
	Surface         string  `yaml:"surface"`
	Filler          string  `yaml:"filler"`
	MaxDepth        int     `yaml:"max_depth"`
}

// ParseManifest decodes a YAML-encoded manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("registry: parse manifest: %w", err)
	}
	return &m, nil
}

// Apply registers every descriptor in the manifest into env. Biome surface/
// filler names are resolved against env.Blocks, which must already contain
// them (built-in or from an earlier manifest application).
func (m *Manifest) Apply(env *Env) error {
	for _, b := range m.Blocks {
		desc := &BlockDesc{Namespace: b.Namespace, Key: b.Key, LegacyID: b.LegacyID, DefaultState: b.Meta}
		if err := env.Legacy.RegisterLegacy(b.LegacyID, b.Meta, desc); err != nil {
			return fmt.Errorf("registry: apply manifest block %s:%s: %w", b.Namespace, b.Key, err)
		}
	}
	for _, bi := range m.Biomes {
		surface, ok := env.Blocks.ByName(bi.Surface)
		if !ok {
			return fmt.Errorf("registry: apply manifest biome %s:%s: surface block %q not registered", bi.Namespace, bi.Key, bi.Surface)
		}
		filler, ok := env.Blocks.ByName(bi.Filler)
		if !ok {
			return fmt.Errorf("registry: apply manifest biome %s:%s: filler block %q not registered", bi.Namespace, bi.Key, bi.Filler)
		}
		surfaceDesc, _ := env.Blocks.Get(surface)
		fillerDesc, _ := env.Blocks.Get(filler)
		desc := &BiomeDesc{
			Namespace: bi.Namespace, Key: bi.Key, LegacyID: bi.LegacyID,
			BaseTemperature: bi.BaseTemperature, BaseRainfall: bi.BaseRainfall,
			Surface: surfaceDesc, Filler: fillerDesc, MaxDepth: bi.MaxDepth,
		}
		if _, err := env.Biomes.Register(desc); err != nil {
			return fmt.Errorf("registry: apply manifest biome %s:%s: %w", bi.Namespace, bi.Key, err)
		}
	}
	return nil
}
