package query

import "sync"

// generations counts invalidations per family. A fetch that began before an
// invalidation of its family must not write its result back.
type generations struct {
	mu     sync.Mutex
	all    uint64
	family map[string]uint64
}

type generation struct {
	all    uint64
	family uint64
}

func (g *generations) current(k Key) generation {
	g.mu.Lock()
	defer g.mu.Unlock()
	return generation{all: g.all, family: g.family[familyOf(k)]}
}

// bump marks prefix as invalidated. An empty prefix invalidates every family.
func (g *generations) bump(prefix Key) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(prefix) == 0 {
		g.all++
		return
	}
	if g.family == nil {
		g.family = make(map[string]uint64)
	}
	g.family[familyOf(prefix)]++
}

func familyOf(k Key) string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}
