// Package revalidate tracks invalidation stamps for named view paths.
// Mutation handlers bump the stamp of the listing (and detail) path they
// touched; list endpoints read it to answer conditional GETs.
package revalidate

import (
	"fmt"
	"sync"
	"time"
)

type Revalidator interface {
	Revalidate(path string)
}

type Registry struct {
	mu     sync.RWMutex
	stamps map[string]time.Time
}

func NewRegistry() *Registry {
	return &Registry{stamps: map[string]time.Time{}}
}

var _ Revalidator = (*Registry)(nil)

func (r *Registry) Revalidate(path string) {
	r.mu.Lock()
	r.stamps[path] = time.Now()
	r.mu.Unlock()
}

// Stamp returns the last invalidation time for a path; the zero time when
// the path has never been invalidated.
func (r *Registry) Stamp(path string) time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stamps[path]
}

// ETag renders the stamp as a weak entity tag for list responses.
func (r *Registry) ETag(path string) string {
	return fmt.Sprintf(`W/"%d"`, r.Stamp(path).UnixNano())
}
