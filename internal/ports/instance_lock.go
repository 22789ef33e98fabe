package ports

// InstanceLock guarantees a single timer owner per home directory
type InstanceLock interface {
	Path() string
	Release() error
}
