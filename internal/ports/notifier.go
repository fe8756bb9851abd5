package ports

// Notifier receives human-readable progress and problem reports.
// Implementations must never block the import on delivery.
type Notifier interface {
	Progressf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopNotifier discards all messages.
type NopNotifier struct{}

func (NopNotifier) Progressf(string, ...any) {}
func (NopNotifier) Warnf(string, ...any)     {}
func (NopNotifier) Errorf(string, ...any)    {}
