package clap

// Host is the wrapper's handle back to the host. It stays valid for the
// lifetime of the plugin instance.
type Host interface {
	// RequestCallback asks the host to call the instance's OnMainThread
	// entry point on its main thread. Callable from any thread.
	RequestCallback()

	// GetExtension queries a host capability by identifier and returns
	// nil when the host does not support it.
	GetExtension(id string) any
}

// ThreadChecker is the optional ExtHostThreadCheck capability.
type ThreadChecker interface {
	IsMainThread() bool
}

// LatencyHost is the optional ExtHostLatency capability. LatencyChanged
// must only be called from the host's main thread.
type LatencyHost interface {
	LatencyChanged()
}
