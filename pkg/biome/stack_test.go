package biome

import "testing"

func TestSampleDeterministic(t *testing.T) {
	st := BuildVanilla125Stack()
	g1 := st.Sample(12345, 0, 0, 16, 16)
	g2 := st.Sample(12345, 0, 0, 16, 16)
	if len(g1.Data) != len(g2.Data) {
		t.Fatalf("grid length mismatch: %d vs %d", len(g1.Data), len(g2.Data))
	}
	for i := range g1.Data {
		if g1.Data[i] != g2.Data[i] {
			t.Fatalf("cell %d differs between runs: %v vs %v", i, g1.Data[i], g2.Data[i])
		}
	}
}

func TestSampleDifferentSeedsDiverge(t *testing.T) {
	st := BuildVanilla125Stack()
	g1 := st.Sample(1, 0, 0, 32, 32)
	g2 := st.Sample(2, 0, 0, 32, 32)

	differs := false
	for i := range g1.Data {
		if g1.Data[i] != g2.Data[i] {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("expected different world seeds to produce different biome grids")
	}
}

func TestSampleProducesKnownBiomeIDs(t *testing.T) {
	st := BuildVanilla125Stack()
	g := st.Sample(999, -64, -64, 128, 128)

	known := map[BiomeID]bool{
		Ocean: true, Plains: true, Desert: true, ExtremeHills: true, Forest: true,
		Taiga: true, Swampland: true, River: true, FrozenOcean: true, FrozenRiver: true,
		IcePlains: true, IceMountains: true, MushroomIsland: true, MushroomIslandShore: true,
		Beach: true, DesertHills: true, ForestHills: true, TaigaHills: true,
		ExtremeHillsEdge: true, Jungle: true, JungleHills: true,
	}
	for i, b := range g.Data {
		if !known[b] {
			t.Fatalf("cell %d produced unknown biome id %d", i, b)
		}
	}
}

func TestSampleScale4WindowCoversRequestedArea(t *testing.T) {
	st := BuildVanilla125Stack()
	g := st.SampleScale4(42, 0, 0, 5, 5)
	if g.W != 5 || g.H != 5 {
		t.Fatalf("expected a 5x5 grid, got %dx%d", g.W, g.H)
	}
	if len(g.Data) != 25 {
		t.Fatalf("expected 25 cells, got %d", len(g.Data))
	}
}

func TestSampleOriginLeansLand(t *testing.T) {
	// The island layer forces land at the origin cell; across a handful of
	// seeds the origin chunk should show at least one non-ocean cell.
	st := BuildVanilla125Stack()
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		g := st.Sample(seed, 0, 0, 16, 16)
		foundLand := false
		for _, b := range g.Data {
			if b != Ocean && b != River && b != FrozenOcean && b != FrozenRiver {
				foundLand = true
				break
			}
		}
		if !foundLand {
			t.Fatalf("seed %d: expected some land near the forced-origin cell", seed)
		}
	}
}
