package orient

import (
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/bio/biosimd"
)

// reverseComplement computes a reverse complement of the given DNA string.
func reverseComplement(seq string) string {
	buf := make([]byte, len(seq))
	biosimd.ReverseComp8NoValidate(buf, gunsafe.StringToBytes(seq))
	return gunsafe.BytesToString(buf)
}

// validBase marks the bytes allowed in unitig sequences.
var validBase [256]bool

func init() {
	validBase['A'] = true
	validBase['C'] = true
	validBase['G'] = true
	validBase['T'] = true
}
