// Command datapack fetches a pinned legacy block/biome id reference table
// from PrismarineJS's minecraft-data and converts it into a YAML manifest
// consumable by pkg/registry.ParseManifest. It is a development-time tool,
// not part of the library surface: the library itself never reaches out to
// the network (spec.md's external-interfaces section forbids it).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/vanilla125/pkg/registry"
)

type rawBlock struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Variations  []struct {
		Metadata    int    `json:"metadata"`
		DisplayName string `json:"displayName"`
	} `json:"variations"`
}

type rawBiome struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
}

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		platform = flag.String("platform", "pc", "platform of schemas")
		ver      = flag.String("version", "1.8", "minecraft-data version carrying legacy numeric ids closest to 1.2.5's")
		out      = flag.String("o", "./scheme/vanilla125-manifest.yaml", "output manifest path")
	)
	flag.Parse()

	if *out == "" {
		panic("output manifest path required")
	}

	fetchDir, err := os.MkdirTemp("", "vanilla125-datapack-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(fetchDir)

	log.Printf("fetching minecraft-data %s/%s reference tables into %s", *platform, *ver, fetchDir)

	url := fmt.Sprintf("git::%s//data/%s/%s", *base, *platform, *ver)
	if err := get.Get(fetchDir, url); err != nil {
		panic(err)
	}

	blocks, err := loadBlocks(filepath.Join(fetchDir, "blocks.json"))
	if err != nil {
		panic(err)
	}
	biomes, err := loadBiomes(filepath.Join(fetchDir, "biomes.json"))
	if err != nil {
		panic(err)
	}

	manifest := registry.Manifest{Blocks: blocks, Biomes: biomes}
	data, err := yaml.Marshal(&manifest)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		panic(err)
	}

	log.Printf("wrote %d blocks, %d biomes to %s", len(blocks), len(biomes), *out)
}

// loadBlocks reads minecraft-data's blocks.json and flattens each entry's
// legacy (id, meta) variations into one ManifestBlock per variant, the way
// pre-1.13 minecraft-data itself models metadata-based block variants.
func loadBlocks(path string) ([]registry.ManifestBlock, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datapack: read %s: %w", path, err)
	}
	var entries []rawBlock
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("datapack: parse %s: %w", path, err)
	}

	var out []registry.ManifestBlock
	for _, e := range entries {
		if len(e.Variations) == 0 {
			out = append(out, registry.ManifestBlock{
				Namespace: "minecraft", Key: e.Name, LegacyID: uint16(e.ID), Meta: 0,
			})
			continue
		}
		for _, v := range e.Variations {
			out = append(out, registry.ManifestBlock{
				Namespace: "minecraft", Key: e.Name, LegacyID: uint16(e.ID), Meta: uint8(v.Metadata),
			})
		}
	}
	return out, nil
}

// loadBiomes reads minecraft-data's biomes.json. Surface/filler block keys
// aren't part of minecraft-data's biome schema, so every entry here needs
// its Surface/Filler fields filled in by hand before the manifest can be
// applied to an Env — this tool produces a starting point, not a
// ready-to-apply manifest.
func loadBiomes(path string) ([]registry.ManifestBiome, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datapack: read %s: %w", path, err)
	}
	var entries []rawBiome
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("datapack: parse %s: %w", path, err)
	}

	out := make([]registry.ManifestBiome, 0, len(entries))
	for _, e := range entries {
		out = append(out, registry.ManifestBiome{
			Namespace:       "minecraft",
			Key:             e.Name,
			LegacyID:        uint8(e.ID),
			BaseTemperature: e.Temperature,
			BaseRainfall:    e.Rainfall,
		})
	}
	return out, nil
}
