package ports

// Notifier presents transient messages to the user. Calls are fire-and-forget.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator requests a view transition. The caller does not wait for it.
type Navigator interface {
	NavigateTo(path string)
}
