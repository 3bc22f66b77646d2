package service

// Notifier receives transient user-facing notifications from the core
// operations. The presentation layer supplies the implementation.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Info(string)    {}
func (nopNotifier) Error(string)   {}
