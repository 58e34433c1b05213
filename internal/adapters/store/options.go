package store

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithRoot sets the root directory holding the per-match layout.
func WithRoot(root string) Option {
	return func(s *Store) {
		if root != "" {
			s.root = root
		}
	}
}
