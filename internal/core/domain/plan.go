package domain

// Plan is everything a build run needs: the step graph, the reproducibility
// environment, and the filesystem layout. Loaders produce it, the app
// consumes it.
type Plan struct {
	Pipeline    *Pipeline
	Environment Environment
	Layout      Layout
}
