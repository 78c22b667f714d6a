package registry

// Vanilla125Blocks is the built-in 1.2.5 block descriptor set. It is not
// exhaustive of every vanilla block id — it covers everything the terrain
// generator, surface pass, ravine carver, and decoration pass in this
// module place — but callers may register additional descriptors (or load
// a supplementary manifest, see manifest.go) for ids this set omits.
var (
	BlockAir        = &BlockDesc{Namespace: "minecraft", Key: "air", LegacyID: 0}
	BlockStone      = &BlockDesc{Namespace: "minecraft", Key: "stone", LegacyID: 1}
	BlockGrass      = &BlockDesc{Namespace: "minecraft", Key: "grass", LegacyID: 2}
	BlockDirt       = &BlockDesc{Namespace: "minecraft", Key: "dirt", LegacyID: 3}
	BlockBedrock    = &BlockDesc{Namespace: "minecraft", Key: "bedrock", LegacyID: 7}
	BlockWaterFlow  = &BlockDesc{Namespace: "minecraft", Key: "flowing_water", LegacyID: 8}
	BlockWater      = &BlockDesc{Namespace: "minecraft", Key: "water", LegacyID: 9}
	BlockLavaFlow   = &BlockDesc{Namespace: "minecraft", Key: "flowing_lava", LegacyID: 10}
	BlockLava       = &BlockDesc{Namespace: "minecraft", Key: "lava", LegacyID: 11}
	BlockSand       = &BlockDesc{Namespace: "minecraft", Key: "sand", LegacyID: 12}
	BlockGravel     = &BlockDesc{Namespace: "minecraft", Key: "gravel", LegacyID: 13}
	BlockGoldOre    = &BlockDesc{Namespace: "minecraft", Key: "gold_ore", LegacyID: 14}
	BlockIronOre    = &BlockDesc{Namespace: "minecraft", Key: "iron_ore", LegacyID: 15}
	BlockCoalOre    = &BlockDesc{Namespace: "minecraft", Key: "coal_ore", LegacyID: 16}
	BlockLog        = &BlockDesc{Namespace: "minecraft", Key: "log", LegacyID: 17}
	BlockLeaves     = &BlockDesc{Namespace: "minecraft", Key: "leaves", LegacyID: 18}
	BlockSandstone  = &BlockDesc{Namespace: "minecraft", Key: "sandstone", LegacyID: 24}
	BlockIce        = &BlockDesc{Namespace: "minecraft", Key: "ice", LegacyID: 79}
	BlockSnowLayer  = &BlockDesc{Namespace: "minecraft", Key: "snow_layer", LegacyID: 78}
	BlockSnowBlock  = &BlockDesc{Namespace: "minecraft", Key: "snow", LegacyID: 80}
	BlockClay       = &BlockDesc{Namespace: "minecraft", Key: "clay", LegacyID: 82}
	BlockCactus     = &BlockDesc{Namespace: "minecraft", Key: "cactus", LegacyID: 81}
	BlockTallGrass  = &BlockDesc{Namespace: "minecraft", Key: "tallgrass", LegacyID: 31, DefaultState: 1}
	BlockDeadBush   = &BlockDesc{Namespace: "minecraft", Key: "deadbush", LegacyID: 32}
	BlockMycelium   = &BlockDesc{Namespace: "minecraft", Key: "mycelium", LegacyID: 110}
)

// RegisterVanilla125Blocks registers every built-in 1.2.5 block descriptor
// into reg (runtime indices) and binds its default-state legacy (id, meta)
// pair into legacy. Extra metadata variants (e.g. oak/spruce/birch log and
// leaves, or tallgrass's fern variant) should be bound separately by the
// caller via legacy.RegisterLegacy with the same descriptor.
func RegisterVanilla125Blocks(reg *Registry[*BlockDesc], legacy *LegacyBlockTable) error {
	all := []*BlockDesc{
		BlockAir, BlockStone, BlockGrass, BlockDirt, BlockBedrock,
		BlockWaterFlow, BlockWater, BlockLavaFlow, BlockLava,
		BlockSand, BlockGravel, BlockGoldOre, BlockIronOre, BlockCoalOre,
		BlockLog, BlockLeaves, BlockSandstone, BlockIce, BlockSnowLayer,
		BlockSnowBlock, BlockClay, BlockCactus, BlockTallGrass, BlockDeadBush,
		BlockMycelium,
	}
	for _, b := range all {
		if _, err := reg.Register(b); err != nil {
			return err
		}
		if err := legacy.RegisterLegacy(b.LegacyID, b.DefaultState, b); err != nil {
			return err
		}
	}
	return nil
}
