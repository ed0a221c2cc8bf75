package polynomial

import (
	"encoding/binary"
	"fmt"
	"math"
)

const mulConfigEncodedSize = 8 + 8 + 8 + 1 // NumThreads, NSegments, TargetLoad, Verbose

// MarshalBinary encodes c as a fixed-size little-endian record, so tuned
// MulConfig values can travel alongside a serialized build (e.g. for audit
// logs or reproducing a run) without reflection at the call site.
func (c MulConfig) MarshalBinary() ([]byte, error) {
	buf := make([]byte, mulConfigEncodedSize)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(int64(c.NumThreads)))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(int64(c.NSegments)))
	binary.LittleEndian.PutUint64(buf[16:24], math.Float64bits(c.TargetLoad))
	if c.Verbose {
		buf[24] = 1
	}
	return buf, nil
}

// UnmarshalBinary decodes a record produced by MarshalBinary.
func (c *MulConfig) UnmarshalBinary(data []byte) error {
	if len(data) != mulConfigEncodedSize {
		return fmt.Errorf("polynomial: MulConfig.UnmarshalBinary: want %d bytes, got %d", mulConfigEncodedSize, len(data))
	}
	c.NumThreads = int(int64(binary.LittleEndian.Uint64(data[0:8])))
	c.NSegments = int(int64(binary.LittleEndian.Uint64(data[8:16])))
	c.TargetLoad = math.Float64frombits(binary.LittleEndian.Uint64(data[16:24]))
	c.Verbose = data[24] != 0
	return nil
}
