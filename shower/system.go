package shower

// System is one step of a tick. Systems run in registration order and share
// the UpdateFrame built for that tick.
type System interface {
	Execute(frame *UpdateFrame)
}
