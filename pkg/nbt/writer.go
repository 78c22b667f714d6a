package nbt

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer writes NBT binary data to an io.Writer in big-endian format. All
// write methods accumulate errors internally; call Err() after writing to
// check for failures.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a new NBT Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered during writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(data []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(data)
}

func (w *Writer) putByte(v byte) {
	w.write([]byte{v})
}

func (w *Writer) putUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.write(buf[:])
}

func (w *Writer) putInt32(v int32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	w.write(buf[:])
}

func (w *Writer) putInt64(v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	w.write(buf[:])
}

func (w *Writer) writeTagHeader(tagType byte, name string) {
	w.putByte(tagType)
	w.putUint16(uint16(len(name)))
	if len(name) > 0 {
		w.write([]byte(name))
	}
}

// BeginCompound writes a compound tag header. Use name="" for list elements.
func (w *Writer) BeginCompound(name string) {
	w.writeTagHeader(TagCompound, name)
}

// EndCompound writes an End tag to close a compound.
func (w *Writer) EndCompound() {
	w.putByte(TagEnd)
}

// WriteTagByte writes a named byte tag.
func (w *Writer) WriteTagByte(name string, v byte) {
	w.writeTagHeader(TagByte, name)
	w.putByte(v)
}

// WriteShort writes a named short tag.
func (w *Writer) WriteShort(name string, v int16) {
	w.writeTagHeader(TagShort, name)
	w.putUint16(uint16(v))
}

// WriteInt writes a named int tag.
func (w *Writer) WriteInt(name string, v int32) {
	w.writeTagHeader(TagInt, name)
	w.putInt32(v)
}

// WriteLong writes a named long tag.
func (w *Writer) WriteLong(name string, v int64) {
	w.writeTagHeader(TagLong, name)
	w.putInt64(v)
}

// WriteFloat writes a named float tag.
func (w *Writer) WriteFloat(name string, v float32) {
	w.writeTagHeader(TagFloat, name)
	w.putInt32(int32(math.Float32bits(v)))
}

// WriteDouble writes a named double tag.
func (w *Writer) WriteDouble(name string, v float64) {
	w.writeTagHeader(TagDouble, name)
	w.putInt64(int64(math.Float64bits(v)))
}

// WriteByteArray writes a named byte array tag.
func (w *Writer) WriteByteArray(name string, v []byte) {
	w.writeTagHeader(TagByteArray, name)
	w.putInt32(int32(len(v)))
	w.write(v)
}

// WriteString writes a named string tag.
func (w *Writer) WriteString(name string, v string) {
	w.writeTagHeader(TagString, name)
	w.putUint16(uint16(len(v)))
	if len(v) > 0 {
		w.write([]byte(v))
	}
}

// WriteIntArray writes a named int array tag.
func (w *Writer) WriteIntArray(name string, v []int32) {
	w.writeTagHeader(TagIntArray, name)
	w.putInt32(int32(len(v)))
	for _, val := range v {
		w.putInt32(val)
	}
}

// BeginList writes a named list tag header.
func (w *Writer) BeginList(name string, elemType byte, count int32) {
	w.writeTagHeader(TagList, name)
	w.putByte(elemType)
	w.putInt32(count)
}

// WriteTag serializes a generic Tag tree rooted at tag, including its own
// header. Used for round-tripping payloads read with Reader.ReadNamedTag rather
// than chunk encoding, which calls the named methods above directly the
// way the teacher's EncodeChunkNBT does.
func (w *Writer) WriteTag(name string, tag *Tag) {
	w.writeTagHeader(tag.Type, name)
	w.writeTagBody(tag)
}

func (w *Writer) writeTagBody(tag *Tag) {
	switch tag.Type {
	case TagEnd:
	case TagByte:
		w.putByte(tag.Byte)
	case TagShort:
		w.putUint16(uint16(tag.Short))
	case TagInt:
		w.putInt32(tag.Int)
	case TagLong:
		w.putInt64(tag.Long)
	case TagFloat:
		w.putInt32(int32(math.Float32bits(tag.Float)))
	case TagDouble:
		w.putInt64(int64(math.Float64bits(tag.Double)))
	case TagByteArray:
		w.putInt32(int32(len(tag.ByteArray)))
		w.write(tag.ByteArray)
	case TagString:
		w.putUint16(uint16(len(tag.Str)))
		if len(tag.Str) > 0 {
			w.write([]byte(tag.Str))
		}
	case TagList:
		w.putByte(tag.ListType)
		w.putInt32(int32(len(tag.List)))
		for i := range tag.List {
			w.writeTagBody(&tag.List[i])
		}
	case TagCompound:
		for _, child := range tag.Compound {
			w.WriteTag(child.Name, child.Tag)
		}
		w.EndCompound()
	case TagIntArray:
		w.putInt32(int32(len(tag.IntArray)))
		for _, v := range tag.IntArray {
			w.putInt32(v)
		}
	}
}
