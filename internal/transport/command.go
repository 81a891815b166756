package transport

// Command is the single operation requested for one invocation. It is a
// closed sum: exactly one of SendMessage or ListDevices, never both, never
// neither.
type Command interface {
	command()
}

// SendMessage delivers a text command to the filtered device.
type SendMessage struct {
	Text string
}

// ListDevices enumerates every visible HID device for display.
type ListDevices struct{}

func (SendMessage) command() {}
func (ListDevices) command() {}
