package dispatcher

import (
	"context"

	"go.uber.org/zap"
)

// Notification is a non-fatal problem reported while dispatching.
type Notification struct {
	Command string
	Keymap  string
	Message string
	Err     error
}

// Notifier receives dispatch notifications, such as unknown commands.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}

// LogNotifier reports notifications as warnings.
type LogNotifier struct {
	Log *zap.SugaredLogger
}

// Notify implements Notifier.
func (l LogNotifier) Notify(_ context.Context, n Notification) {
	l.Log.Warnw(n.Message, "command", n.Command, "keymap", n.Keymap, "error", n.Err)
}
