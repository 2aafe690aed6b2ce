package resource

// Notifier receives user-facing status messages. The client only invokes it
// on failure paths; success results are returned to the caller silently.
//
// Implementations are optional and best-effort: the client tolerates a nil
// Notifier, and a Notify that panics is contained and logged rather than
// allowed to mask the underlying result.
type Notifier interface {
	Notify(message string, success bool)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string, success bool)

// Notify calls f(message, success).
func (f NotifierFunc) Notify(message string, success bool) {
	f(message, success)
}

// notify invokes the configured notifier, if any, containing panics.
func (c *Client) notify(message string, success bool) {
	if c.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("notifier panicked", "panic", r)
		}
	}()
	c.notifier.Notify(message, success)
}
