package uniform

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	uniformerrors "github.com/tamirms/uniform/errors"
)

const (
	// recordVersion is the current sampler record format version.
	recordVersion = uint8(0x01)

	// recordFieldsSize covers the header and the three numeric fields;
	// recordSize adds the trailing checksum.
	recordFieldsSize = 32
	recordSize       = 40
)

// MarshalBinary serializes the sampler as a fixed 40-byte record.
//
// Layout (little-endian):
//
//	Offset  Size  Field
//	0       1     Version          0x01
//	1       1     Width            T's width in bits
//	2       6     Reserved         zero
//	8       8     Low              bit pattern, zero-extended
//	16      8     Span             range size (0 = full domain)
//	24      8     Thresh           rejection count
//	32      8     Checksum         xxhash.Sum64 of bytes [0, 32)
//
// The error result is always nil; the signature satisfies
// encoding.BinaryMarshaler.
func (s Sampler[T]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, recordSize)
	buf[0] = recordVersion
	buf[1] = byte(bitsOf[T]())
	binary.LittleEndian.PutUint64(buf[8:16], toWord(s.low))
	binary.LittleEndian.PutUint64(buf[16:24], s.span)
	binary.LittleEndian.PutUint64(buf[24:32], s.thresh)
	binary.LittleEndian.PutUint64(buf[32:40], xxhash.Sum64(buf[:recordFieldsSize]))
	return buf, nil
}

// UnmarshalBinary restores a sampler from a record produced by
// MarshalBinary. The restored fields are bit-identical to the original's.
// Fails with errors.ErrTruncated, errors.ErrChecksum, errors.ErrVersion, or
// errors.ErrWidthMismatch when the record is short, corrupt, from an
// unknown format version, or was marshaled for a type of a different width.
func (s *Sampler[T]) UnmarshalBinary(data []byte) error {
	if len(data) < recordSize {
		return fmt.Errorf("%w: %d bytes, want %d",
			uniformerrors.ErrTruncated, len(data), recordSize)
	}
	sum := binary.LittleEndian.Uint64(data[32:40])
	if got := xxhash.Sum64(data[:recordFieldsSize]); got != sum {
		return fmt.Errorf("%w: computed 0x%016X, stored 0x%016X",
			uniformerrors.ErrChecksum, got, sum)
	}
	if data[0] != recordVersion {
		return fmt.Errorf("%w: version %d", uniformerrors.ErrVersion, data[0])
	}
	if want := bitsOf[T](); uint(data[1]) != want {
		return fmt.Errorf("%w: record width %d bits, target type has %d",
			uniformerrors.ErrWidthMismatch, data[1], want)
	}
	s.low = T(binary.LittleEndian.Uint64(data[8:16]))
	s.span = binary.LittleEndian.Uint64(data[16:24])
	s.thresh = binary.LittleEndian.Uint64(data[24:32])
	return nil
}
