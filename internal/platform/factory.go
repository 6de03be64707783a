package platform

import (
	"github.com/inkpad/inkpad/pkg/adapters/kv"
	"github.com/inkpad/inkpad/pkg/core"
)

// Open builds a note store over the configured backend. The path
// argument is adapter-specific; for the default key-value adapter it is
// the base directory of the store.
//
// Open does not load persisted state. Callers decide when to call
// Store.Load, typically right before first render.
func Open(path string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	backend := o.backend
	if backend == nil {
		codec, err := kv.CodecByName(o.codec)
		if err != nil {
			return nil, err
		}
		backend, err = kv.New(kv.Config{
			Path:   path,
			Codec:  codec,
			Logger: o.logger,
		})
		if err != nil {
			return nil, err
		}
	}

	return core.NewStore(backend, core.Config{
		Logger: o.logger,
		Clock:  o.clock,
		NewID:  o.newID,
	}), nil
}
