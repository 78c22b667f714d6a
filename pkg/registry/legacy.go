package registry

// legacyKey packs a legacy (id, meta) pair the way the Anvil boundary
// stores it: 12 bits of id, 4 bits of metadata.
type legacyKey uint16

func packLegacy(id uint16, meta uint8) legacyKey {
	return legacyKey(id<<4 | uint16(meta&0xF))
}

// LegacyBlockTable maps vanilla legacy (id, meta) pairs to runtime block
// indices. It is populated alongside block registration and consulted only
// by the Anvil boundary (pkg/anvil) — never used as a substitute for
// runtime indices elsewhere, since legacy ids are not guaranteed unique
// across non-vanilla registrations (spec.md §3).
type LegacyBlockTable struct {
	registry *Registry[*BlockDesc]
	byLegacy map[legacyKey]Index
}

// NewLegacyBlockTable creates a legacy lookup table bound to a block
// registry. Call RegisterLegacy once per (descriptor, meta) combination
// the descriptor should answer to; a descriptor with DefaultState as its
// only valid metadata only needs one call.
func NewLegacyBlockTable(registry *Registry[*BlockDesc]) *LegacyBlockTable {
	return &LegacyBlockTable{
		registry: registry,
		byLegacy: make(map[legacyKey]Index),
	}
}

// RegisterLegacy binds a legacy (id, meta) pair to a descriptor already
// present in the table's registry. It is idempotent for identical bindings
// and overwrites on conflicting ones — the library's built-in bootstrap
// never does this, but a manifest-extended registry (pkg/registry/manifest.go)
// may re-bind a pair deliberately.
func (t *LegacyBlockTable) RegisterLegacy(id uint16, meta uint8, desc *BlockDesc) error {
	idx, err := t.registry.Register(desc)
	if err != nil {
		return err
	}
	t.byLegacy[packLegacy(id, meta)] = idx
	return nil
}

// LegacyToIndex resolves a legacy (id, meta) pair to a runtime index.
func (t *LegacyBlockTable) LegacyToIndex(id uint16, meta uint8) (Index, bool) {
	idx, ok := t.byLegacy[packLegacy(id, meta)]
	return idx, ok
}

// IndexToLegacy is the inverse of LegacyToIndex: given a runtime index,
// returns a legacy (id, meta) pair bound to exactly that index, if any.
// When several pairs are bound to the same index, which of them is
// returned is not defined and may differ between calls.
func (t *LegacyBlockTable) IndexToLegacy(idx Index) (id uint16, meta uint8, ok bool) {
	for k, v := range t.byLegacy {
		if v == idx {
			return uint16(k) >> 4, uint8(k) & 0xF, true
		}
	}
	return 0, 0, false
}
