package schema

import (
	"sync"

	"github.com/but80/euterpe/log"
	"github.com/but80/euterpe/setting"
)

// Registry shares one Schema per distinct setting value.
// Entries are created on first use and live as long as the registry.
type Registry struct {
	schemas sync.Map
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Get returns the registered schema for s, deriving it on first use.
// Concurrent first calls may each derive a schema; the first one stored wins.
func (r *Registry) Get(s setting.Setting) (*Schema, error) {
	key := s.Key()
	if v, ok := r.schemas.Load(key); ok {
		log.Debugf("schema registry hit for %s", s)
		return v.(*Schema), nil
	}
	sc, err := New(s)
	if err != nil {
		return nil, err
	}
	v, _ := r.schemas.LoadOrStore(key, sc)
	return v.(*Schema), nil
}

func (r *Registry) Len() int {
	n := 0
	r.schemas.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

var defaultRegistry = NewRegistry()

// Get returns the process-wide schema for s.
func Get(s setting.Setting) (*Schema, error) {
	return defaultRegistry.Get(s)
}

// MustGet is like Get but panics on an invalid setting.
func MustGet(s setting.Setting) *Schema {
	sc, err := Get(s)
	if err != nil {
		panic(err)
	}
	return sc
}
