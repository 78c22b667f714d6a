package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/OCharnyshevich/vanilla125/pkg/vanerr"
)

// Reader reads NBT binary data from an io.Reader, the inverse of Writer.
// Malformed input (truncated arrays, an unrecognized tag id, a length that
// would overrun the stream) is reported as vanerr.ErrNbtMalformed, which
// pkg/anvil returns as a level.Err load outcome; pkg/level then regenerates
// the chunk as it would an absent one rather than surface a hard failure.
type Reader struct {
	r io.Reader
}

// NewReader creates a new NBT Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, fmt.Errorf("nbt: read %d bytes: %w: %w", n, vanerr.ErrNbtMalformed, err)
	}
	return buf, nil
}

func (r *Reader) readByte() (byte, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) readUint16() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) readInt32() (int32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func (r *Reader) readInt64() (int64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func (r *Reader) readName() (string, error) {
	n, err := r.readUint16()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	b, err := r.read(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadNamedTag reads a single tag header (type + name) followed by its
// body. It returns (nil, "", nil) cleanly at a TagEnd marker, the signal a
// compound or the root stream uses to close.
func (r *Reader) ReadNamedTag() (*Tag, string, error) {
	tagType, err := r.readByte()
	if err != nil {
		return nil, "", err
	}
	if tagType == TagEnd {
		return nil, "", nil
	}
	name, err := r.readName()
	if err != nil {
		return nil, "", err
	}
	tag, err := r.readTagBody(tagType)
	if err != nil {
		return nil, "", err
	}
	return tag, name, nil
}

func (r *Reader) readTagBody(tagType byte) (*Tag, error) {
	tag := &Tag{Type: tagType}
	switch tagType {
	case TagByte:
		v, err := r.readByte()
		if err != nil {
			return nil, err
		}
		tag.Byte = v
	case TagShort:
		v, err := r.readUint16()
		if err != nil {
			return nil, err
		}
		tag.Short = int16(v)
	case TagInt:
		v, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		tag.Int = v
	case TagLong:
		v, err := r.readInt64()
		if err != nil {
			return nil, err
		}
		tag.Long = v
	case TagFloat:
		v, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		tag.Float = math.Float32frombits(uint32(v))
	case TagDouble:
		v, err := r.readInt64()
		if err != nil {
			return nil, err
		}
		tag.Double = math.Float64frombits(uint64(v))
	case TagByteArray:
		n, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("nbt: negative byte array length %d: %w", n, vanerr.ErrNbtMalformed)
		}
		b, err := r.read(int(n))
		if err != nil {
			return nil, err
		}
		tag.ByteArray = b
	case TagString:
		s, err := r.readName()
		if err != nil {
			return nil, err
		}
		tag.Str = s
	case TagList:
		elemType, err := r.readByte()
		if err != nil {
			return nil, err
		}
		count, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, fmt.Errorf("nbt: negative list length %d: %w", count, vanerr.ErrNbtMalformed)
		}
		tag.ListType = elemType
		tag.List = make([]Tag, count)
		for i := int32(0); i < count; i++ {
			elem, err := r.readTagBody(elemType)
			if err != nil {
				return nil, err
			}
			tag.List[i] = *elem
		}
	case TagCompound:
		for {
			child, name, err := r.ReadNamedTag()
			if err != nil {
				return nil, err
			}
			if child == nil {
				break
			}
			tag.Compound = append(tag.Compound, NamedTag{Name: name, Tag: child})
		}
	case TagIntArray:
		n, err := r.readInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("nbt: negative int array length %d: %w", n, vanerr.ErrNbtMalformed)
		}
		arr := make([]int32, n)
		for i := range arr {
			v, err := r.readInt32()
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		tag.IntArray = arr
	default:
		return nil, fmt.Errorf("nbt: unrecognized tag id %d: %w", tagType, vanerr.ErrNbtMalformed)
	}
	return tag, nil
}
