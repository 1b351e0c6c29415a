package slot

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// NewCode draws a uniform 6-digit decimal code (100000–999999). Codes are
// scoped to a single live slot and cleared on cancel, so no uniqueness check
// is made against codes held by other slots.
func NewCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// only reachable when the platform entropy source is broken
		panic(err)
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}
