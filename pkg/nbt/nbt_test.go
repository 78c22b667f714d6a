package nbt

import (
	"bytes"
	"testing"
)

func TestWriteByte(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteTagByte("test", 42)

	data := buf.Bytes()
	if data[0] != TagByte {
		t.Fatalf("expected tag type %d, got %d", TagByte, data[0])
	}
	if data[7] != 42 {
		t.Fatalf("expected value 42, got %d", data[7])
	}
}

func buildSample() *Tag {
	return &Tag{
		Type: TagCompound,
		Compound: []NamedTag{
			{Name: "xPos", Tag: &Tag{Type: TagInt, Int: -7}},
			{Name: "zPos", Tag: &Tag{Type: TagInt, Int: 12}},
			{Name: "name", Tag: &Tag{Type: TagString, Str: "ravine"}},
			{Name: "scale", Tag: &Tag{Type: TagDouble, Double: 3.5}},
			{Name: "blob", Tag: &Tag{Type: TagByteArray, ByteArray: []byte{1, 2, 3, 4}}},
			{Name: "ids", Tag: &Tag{Type: TagIntArray, IntArray: []int32{1, 2, 3}}},
			{Name: "nested", Tag: &Tag{
				Type: TagCompound,
				Compound: []NamedTag{
					{Name: "flag", Tag: &Tag{Type: TagByte, Byte: 1}},
				},
			}},
			{Name: "list", Tag: &Tag{
				Type:     TagList,
				ListType: TagInt,
				List:     []Tag{{Type: TagInt, Int: 1}, {Type: TagInt, Int: 2}},
			}},
		},
	}
}

func TestTagRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteTag("root", buildSample())
	if w.Err() != nil {
		t.Fatalf("write: %v", w.Err())
	}
	original := buf.Bytes()

	r := NewReader(bytes.NewReader(original))
	tag, name, err := r.ReadNamedTag()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if name != "root" {
		t.Fatalf("expected name 'root', got %q", name)
	}

	var reencoded bytes.Buffer
	w2 := NewWriter(&reencoded)
	w2.WriteTag(name, tag)
	if w2.Err() != nil {
		t.Fatalf("re-write: %v", w2.Err())
	}

	if !bytes.Equal(original, reencoded.Bytes()) {
		t.Fatalf("round trip mismatch: %d bytes vs %d bytes", len(original), len(reencoded.Bytes()))
	}
}

func TestTagFind(t *testing.T) {
	tag := buildSample()
	xPos, ok := tag.Find("xPos")
	if !ok || xPos.Int != -7 {
		t.Fatalf("expected xPos=-7, got %v ok=%v", xPos, ok)
	}
	if _, ok := tag.Find("missing"); ok {
		t.Fatal("expected missing key to not be found")
	}
}

func TestReaderRejectsUnknownTagID(t *testing.T) {
	// tag id 200, zero-length name: not a recognized NBT tag type.
	data := []byte{200, 0, 0}
	r := NewReader(bytes.NewReader(data))
	if _, _, err := r.ReadNamedTag(); err == nil {
		t.Fatal("expected an error for an unrecognized tag id")
	}
}
