package merkle

import (
	"time"

	"github.com/zwaves/zmerkle/logger"
)

// EmptySubtreeDefaults precomputes the defaults table consumed by UpdateRoot:
// entry i is the hash of a fully empty subtree of height i. Entry 0 is the
// zero field element (the empty leaf); entry i chains entry i-1 with itself
// at tree level i-1. The table is valid for every tree of height ≤ n built
// with this hasher.
func (h *Hasher[E]) EmptySubtreeDefaults(n int) []E {
	log := logger.Logger()
	start := time.Now()

	defaults := make([]E, n)
	if n == 0 {
		return defaults
	}
	defaults[0] = h.f.Zero()
	for i := 1; i < n; i++ {
		defaults[i] = h.Compress(defaults[i-1], defaults[i-1], i-1)
	}

	log.Debug().Int("levels", n).Dur("took", time.Since(start)).Msg("precomputed empty subtree defaults")
	return defaults
}
