package forest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/lvlath-ift/pathfn"
)

// Compression selects how a snapshot payload is stored.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD Compression = 2
)

// String implements fmt.Stringer.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

var (
	// ErrBadSnapshot indicates a truncated or corrupt snapshot.
	ErrBadSnapshot = errors.New("forest: malformed snapshot")
	// ErrValueKind indicates a snapshot decoded into the wrong value type.
	ErrValueKind = errors.New("forest: snapshot value kind does not match")
	// ErrUnknownCompression indicates an unsupported compression id.
	ErrUnknownCompression = errors.New("forest: unknown compression")
)

// Snapshot layout, little endian:
//
//	[magic "IFTF"][version u8][compression u8][kind u8][flags u8]
//	[nodes u32][raw size u32][stored size u32]   stored size 0 = uncompressed
//	[payload]
//
// The raw payload is nodes values, then labels and predecessors when the
// matching flag is set, each entry 8 bytes.
const (
	snapshotMagic   = "IFTF"
	snapshotVersion = 1
	headerSize      = 20

	kindInt   = 0
	kindFloat = 1

	flagLabel = 1 << 0
	flagPred  = 1 << 1

	lz4MaxRatio = 255
	// maxPayload bounds what a zstd frame may claim to decode to; the header
	// stores sizes as uint32.
	maxPayload = math.MaxUint32
)

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxPayload))
	return dec
}

func valueKind[D pathfn.Number]() uint8 {
	half := 0.5
	if D(half) != 0 {
		return kindFloat
	}
	return kindInt
}

// Encode writes m to w. When compression does not shrink the payload by at
// least 10% it is stored uncompressed.
func Encode[D pathfn.Number](w io.Writer, m *pathfn.Maps[D], c Compression) error {
	if m == nil {
		return fmt.Errorf("%w: nil maps", ErrBadSnapshot)
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if c > CompressionZSTD {
		return fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}

	n := m.Len()
	kind := valueKind[D]()
	var flags uint8
	words := n
	if m.Label != nil {
		flags |= flagLabel
		words += n
	}
	if m.Pred != nil {
		flags |= flagPred
		words += n
	}
	if uint64(words)*8 > math.MaxUint32 {
		return fmt.Errorf("%w: %d nodes too many for one snapshot", ErrBadSnapshot, n)
	}

	raw := make([]byte, 0, words*8)
	for _, v := range m.Value {
		if kind == kindFloat {
			raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(float64(v)))
		} else {
			raw = binary.LittleEndian.AppendUint64(raw, uint64(int64(v)))
		}
	}
	for _, l := range m.Label {
		raw = binary.LittleEndian.AppendUint64(raw, uint64(int64(l)))
	}
	for _, p := range m.Pred {
		raw = binary.LittleEndian.AppendUint64(raw, uint64(int64(p)))
	}

	stored, err := compress(raw, c)
	if err != nil {
		return err
	}
	if len(stored) == 0 || float64(len(stored)) > float64(len(raw))*0.9 {
		stored = nil
	}

	header := make([]byte, headerSize)
	copy(header, snapshotMagic)
	header[4] = snapshotVersion
	header[5] = uint8(c)
	header[6] = kind
	header[7] = flags
	binary.LittleEndian.PutUint32(header[8:], uint32(n))
	binary.LittleEndian.PutUint32(header[12:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(header[16:], uint32(len(stored)))

	if _, err := w.Write(header); err != nil {
		return err
	}
	payload := stored
	if payload == nil {
		payload = raw
	}
	_, err = w.Write(payload)
	return err
}

func compress(raw []byte, c Compression) ([]byte, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, err
		}
		return buf[:n], nil
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(raw, nil), nil
	default:
		return nil, nil
	}
}

// Decode reads a snapshot written by Encode with the same value type.
func Decode[D pathfn.Number](r io.Reader) (*pathfn.Maps[D], error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrBadSnapshot, err)
	}
	if string(header[:4]) != snapshotMagic || header[4] != snapshotVersion {
		return nil, fmt.Errorf("%w: bad magic or version", ErrBadSnapshot)
	}
	c := Compression(header[5])
	if c > CompressionZSTD {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, header[5])
	}
	if kind := header[6]; kind != valueKind[D]() {
		return nil, fmt.Errorf("%w: stored kind %d", ErrValueKind, kind)
	}
	flags := header[7]
	n := int(binary.LittleEndian.Uint32(header[8:]))
	rawSize := binary.LittleEndian.Uint32(header[12:])
	storedSize := binary.LittleEndian.Uint32(header[16:])

	words := n
	if flags&flagLabel != 0 {
		words += n
	}
	if flags&flagPred != 0 {
		words += n
	}
	if uint64(rawSize) != uint64(words)*8 {
		return nil, fmt.Errorf("%w: payload %d bytes for %d nodes", ErrBadSnapshot, rawSize, n)
	}

	// Sizes come from an untrusted header: buffers grow with the bytes that
	// actually arrive instead of being allocated up front.
	var raw []byte
	if storedSize == 0 {
		var err error
		if raw, err = readExactly(r, rawSize); err != nil {
			return nil, err
		}
	} else {
		stored, err := readExactly(r, storedSize)
		if err != nil {
			return nil, err
		}
		if raw, err = decompress(stored, rawSize, c); err != nil {
			return nil, err
		}
	}

	m := pathfn.NewMaps[D](n, 0, flags&flagLabel != 0, flags&flagPred != 0)
	next := func() uint64 {
		v := binary.LittleEndian.Uint64(raw)
		raw = raw[8:]
		return v
	}
	for i := range m.Value {
		if valueKind[D]() == kindFloat {
			m.Value[i] = D(math.Float64frombits(next()))
		} else {
			m.Value[i] = D(int64(next()))
		}
	}
	for i := range m.Label {
		m.Label[i] = int(int64(next()))
	}
	for i := range m.Pred {
		m.Pred[i] = int(int64(next()))
	}
	return m, nil
}

// readExactly reads size bytes from r without trusting size for allocation.
func readExactly(r io.Reader, size uint32) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrBadSnapshot, err)
	}
	if uint32(len(buf)) != size {
		return nil, fmt.Errorf("%w: payload has %d of %d bytes", ErrBadSnapshot, len(buf), size)
	}
	return buf, nil
}

func decompress(stored []byte, rawSize uint32, c Compression) ([]byte, error) {
	switch c {
	case CompressionLZ4:
		// An LZ4 block cannot expand more than lz4MaxRatio times.
		if uint64(rawSize) > uint64(len(stored))*lz4MaxRatio+16 {
			return nil, fmt.Errorf("%w: %d bytes cannot inflate to %d", ErrBadSnapshot, len(stored), rawSize)
		}
		raw := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(stored, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
		}
		if uint32(n) != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrBadSnapshot)
		}
		return raw, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		decoded, err := dec.DecodeAll(stored, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
		}
		if uint64(len(decoded)) != uint64(rawSize) {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrBadSnapshot)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: compressed payload without compression", ErrBadSnapshot)
	}
}
