package loader

// Chain merges several loaders of the same value shape into one. Loaders
// run in the order given; when two sources define the same key, the later
// one wins. Diagnostics from all sources are merged, keyed by each
// loader's own source identifier.
type Chain[V any] struct {
	loaders []Loader[V]
}

// NewChain creates a composite loader over the given loaders.
func NewChain[V any](loaders ...Loader[V]) *Chain[V] {
	return &Chain[V]{loaders: loaders}
}

// Load runs every loader in order and merges the results. The first fatal
// error aborts the chain and is returned as-is; partial results from
// earlier loaders are discarded.
func (c *Chain[V]) Load() (map[string]V, ErrorMap, error) {
	data := make(map[string]V)
	errs := make(ErrorMap)

	for _, l := range c.loaders {
		d, e, err := l.Load()
		if err != nil {
			return nil, nil, err
		}
		for k, v := range d {
			data[k] = v
		}
		errs.Merge(e)
	}
	return data, errs, nil
}
