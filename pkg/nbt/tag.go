package nbt

// NamedTag pairs a compound child's name with its tag, preserving
// declaration order the way a real NBT compound does on the wire.
type NamedTag struct {
	Name string
	Tag  *Tag
}

// Tag is a generic NBT value: exactly one of the fields below is
// meaningful, selected by Type. Reader.ReadNamedTag produces a tree of these;
// Writer.WriteTag serializes one back out byte-identical, which is what
// makes the Anvil boundary's "unknown tag kinds pass through untouched"
// requirement possible without a case for every game version's schema.
type Tag struct {
	Type byte

	Byte      byte
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	Str       string
	IntArray  []int32

	ListType byte
	List     []Tag

	Compound []NamedTag
}

// Find returns the child tag named key within a Compound-type tag, if any.
func (t *Tag) Find(key string) (*Tag, bool) {
	if t == nil || t.Type != TagCompound {
		return nil, false
	}
	for _, c := range t.Compound {
		if c.Name == key {
			return c.Tag, true
		}
	}
	return nil, false
}
