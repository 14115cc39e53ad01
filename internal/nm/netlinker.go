package nm

// Netlinker abstracts the kernel link-state query so it can be mocked.
type Netlinker interface {
	LinkOperState(name string) (string, error)
}
