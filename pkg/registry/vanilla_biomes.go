package registry

// Vanilla125Biomes is the built-in 1.2.5 biome descriptor set (vanilla ids
// 0-7 and 10-22, Jungle/JungleHills included as of 1.2's biome additions;
// Hell (8) and Sky (9) are not included).
var (
	BiomeOcean              = &BiomeDesc{Namespace: "minecraft", Key: "ocean", LegacyID: 0, BaseTemperature: 0.5, BaseRainfall: 0.5, BaseHeight: -1.0, HeightVariation: 0.4, Surface: BlockGravel, Filler: BlockDirt}
	BiomePlains             = &BiomeDesc{Namespace: "minecraft", Key: "plains", LegacyID: 1, BaseTemperature: 0.8, BaseRainfall: 0.4, BaseHeight: 0.1, HeightVariation: 0.3, Surface: BlockGrass, Filler: BlockDirt}
	BiomeDesert             = &BiomeDesc{Namespace: "minecraft", Key: "desert", LegacyID: 2, BaseTemperature: 2.0, BaseRainfall: 0.0, BaseHeight: 0.1, HeightVariation: 0.2, Surface: BlockSand, Filler: BlockSand, MaxDepth: 6}
	BiomeExtremeHills       = &BiomeDesc{Namespace: "minecraft", Key: "extreme_hills", LegacyID: 3, BaseTemperature: 0.2, BaseRainfall: 0.3, BaseHeight: 0.2, HeightVariation: 1.3, Surface: BlockGrass, Filler: BlockDirt}
	BiomeForest             = &BiomeDesc{Namespace: "minecraft", Key: "forest", LegacyID: 4, BaseTemperature: 0.7, BaseRainfall: 0.8, BaseHeight: 0.1, HeightVariation: 0.3, Surface: BlockGrass, Filler: BlockDirt}
	BiomeTaiga              = &BiomeDesc{Namespace: "minecraft", Key: "taiga", LegacyID: 5, BaseTemperature: 0.05, BaseRainfall: 0.8, BaseHeight: 0.1, HeightVariation: 0.4, Surface: BlockGrass, Filler: BlockDirt}
	BiomeSwampland          = &BiomeDesc{Namespace: "minecraft", Key: "swampland", LegacyID: 6, BaseTemperature: 0.8, BaseRainfall: 0.9, BaseHeight: -0.2, HeightVariation: 0.1, Surface: BlockGrass, Filler: BlockDirt}
	BiomeRiver              = &BiomeDesc{Namespace: "minecraft", Key: "river", LegacyID: 7, BaseTemperature: 0.5, BaseRainfall: 0.5, BaseHeight: -0.5, HeightVariation: 0.0, Surface: BlockGrass, Filler: BlockDirt}
	BiomeFrozenOcean        = &BiomeDesc{Namespace: "minecraft", Key: "frozen_ocean", LegacyID: 10, BaseTemperature: 0.0, BaseRainfall: 0.5, BaseHeight: -1.0, HeightVariation: 0.5, Surface: BlockGrass, Filler: BlockDirt}
	BiomeFrozenRiver        = &BiomeDesc{Namespace: "minecraft", Key: "frozen_river", LegacyID: 11, BaseTemperature: 0.0, BaseRainfall: 0.5, BaseHeight: -0.5, HeightVariation: 0.0, Surface: BlockGrass, Filler: BlockDirt}
	BiomeIcePlains          = &BiomeDesc{Namespace: "minecraft", Key: "ice_flats", LegacyID: 12, BaseTemperature: 0.0, BaseRainfall: 0.5, BaseHeight: 0.1, HeightVariation: 0.3, Surface: BlockSnowBlock, Filler: BlockDirt}
	BiomeIceMountains       = &BiomeDesc{Namespace: "minecraft", Key: "ice_mountains", LegacyID: 13, BaseTemperature: 0.0, BaseRainfall: 0.5, BaseHeight: 0.2, HeightVariation: 1.2, Surface: BlockSnowBlock, Filler: BlockDirt}
	BiomeMushroomIsland     = &BiomeDesc{Namespace: "minecraft", Key: "mushroom_fields", LegacyID: 14, BaseTemperature: 0.9, BaseRainfall: 1.0, BaseHeight: 0.2, HeightVariation: 1.0, Surface: BlockMycelium, Filler: BlockDirt}
	BiomeMushroomIslandShore = &BiomeDesc{Namespace: "minecraft", Key: "mushroom_field_shore", LegacyID: 15, BaseTemperature: 0.9, BaseRainfall: 1.0, BaseHeight: -1.0, HeightVariation: 0.1, Surface: BlockMycelium, Filler: BlockDirt}
	BiomeBeach              = &BiomeDesc{Namespace: "minecraft", Key: "beach", LegacyID: 16, BaseTemperature: 0.8, BaseRainfall: 0.4, BaseHeight: 0.0, HeightVariation: 0.1, Surface: BlockSand, Filler: BlockSand}
	BiomeDesertHills        = &BiomeDesc{Namespace: "minecraft", Key: "desert_hills", LegacyID: 17, BaseTemperature: 2.0, BaseRainfall: 0.0, BaseHeight: 0.2, HeightVariation: 0.7, Surface: BlockSand, Filler: BlockSand, MaxDepth: 6}
	BiomeForestHills        = &BiomeDesc{Namespace: "minecraft", Key: "forest_hills", LegacyID: 18, BaseTemperature: 0.7, BaseRainfall: 0.8, BaseHeight: 0.2, HeightVariation: 0.6, Surface: BlockGrass, Filler: BlockDirt}
	BiomeTaigaHills         = &BiomeDesc{Namespace: "minecraft", Key: "taiga_hills", LegacyID: 19, BaseTemperature: 0.05, BaseRainfall: 0.8, BaseHeight: 0.2, HeightVariation: 0.7, Surface: BlockGrass, Filler: BlockDirt}
	BiomeExtremeHillsEdge   = &BiomeDesc{Namespace: "minecraft", Key: "smaller_extreme_hills", LegacyID: 20, BaseTemperature: 0.2, BaseRainfall: 0.3, BaseHeight: 0.2, HeightVariation: 0.8, Surface: BlockGrass, Filler: BlockDirt}
	BiomeJungle             = &BiomeDesc{Namespace: "minecraft", Key: "jungle", LegacyID: 21, BaseTemperature: 1.2, BaseRainfall: 0.9, BaseHeight: 0.2, HeightVariation: 0.4, Surface: BlockGrass, Filler: BlockDirt}
	BiomeJungleHills        = &BiomeDesc{Namespace: "minecraft", Key: "jungle_hills", LegacyID: 22, BaseTemperature: 1.2, BaseRainfall: 0.9, BaseHeight: 1.8, HeightVariation: 0.2, Surface: BlockGrass, Filler: BlockDirt}
)

// RegisterVanilla125Biomes registers every built-in 1.2.5 biome
// descriptor, binding legacy ids the same way RegisterVanilla125Blocks
// does for blocks.
func RegisterVanilla125Biomes(reg *Registry[*BiomeDesc]) error {
	all := []*BiomeDesc{
		BiomeOcean, BiomePlains, BiomeDesert, BiomeExtremeHills, BiomeForest,
		BiomeTaiga, BiomeSwampland, BiomeRiver, BiomeFrozenOcean,
		BiomeFrozenRiver, BiomeIcePlains, BiomeIceMountains,
		BiomeMushroomIsland, BiomeMushroomIslandShore, BiomeBeach,
		BiomeDesertHills, BiomeForestHills, BiomeTaigaHills,
		BiomeExtremeHillsEdge, BiomeJungle, BiomeJungleHills,
	}
	for _, b := range all {
		if _, err := reg.Register(b); err != nil {
			return err
		}
	}
	return nil
}

// ByLegacyID finds a built-in biome descriptor by its vanilla numeric id.
// This is a small lookup over the built-in set only, used by pkg/anvil
// when translating the on-disk Biomes byte array; registries extended at
// runtime should prefer Registry.ByName.
func ByLegacyID(all []*BiomeDesc, id uint8) (*BiomeDesc, bool) {
	for _, b := range all {
		if b.LegacyID == id {
			return b, true
		}
	}
	return nil, false
}
