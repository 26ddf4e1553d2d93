package cnf

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// fingerprint hashes a (sorted) literal sequence with MurmurHash3's
// 32-bit x86 variant, mirroring the reference implementation's
// murmur3_vec applied to the raw literal array. It is only ever used to
// shortlist candidates in the ingestion duplicate cache; full equality
// is always re-checked on top of it.
func fingerprint(lits []Literal) uint32 {
	buf := make([]byte, 4*len(lits))
	for i, l := range lits {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(int32(l)))
	}
	return murmur3.Sum32(buf)
}
