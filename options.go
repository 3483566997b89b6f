package ripple

type config[S any] struct {
	middleware   []Middleware[S]
	historyLimit int
}

// Option configures a store at construction time.
type Option[S any] func(*config[S])

// WithMiddleware wraps the dispatch pipeline. The first middleware given is
// outermost: it sees the action before the others and returns last.
func WithMiddleware[S any](mw ...Middleware[S]) Option[S] {
	return func(c *config[S]) {
		c.middleware = append(c.middleware, mw...)
	}
}

// WithHistory enables the dispatch journal, keeping at most limit entries.
// A limit of 0 leaves history disabled; a negative limit panics.
func WithHistory[S any](limit int) Option[S] {
	if limit < 0 {
		panic("ripple: WithHistory called with negative limit")
	}
	return func(c *config[S]) {
		c.historyLimit = limit
	}
}
