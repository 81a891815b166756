package hid

// ReportWriter is the slice of Device the transport needs: sequential
// report writes plus deterministic release.
type ReportWriter interface {
	WriteReport(frame []byte) error
	Close() error
}

// Manager enumerates, selects, and opens HID devices. The system
// implementation talks to real hardware; tests substitute their own.
type Manager interface {
	List() ([]DeviceInfo, error)
	Find(f Filter) (DeviceInfo, error)
	Open(info DeviceInfo) (ReportWriter, error)
}

type systemManager struct{}

// NewManager returns the Manager backed by the host's HID subsystem.
func NewManager() Manager {
	return systemManager{}
}

func (systemManager) List() ([]DeviceInfo, error) { return ListDevices() }

func (systemManager) Find(f Filter) (DeviceInfo, error) { return FindDevice(f) }

func (systemManager) Open(info DeviceInfo) (ReportWriter, error) { return Open(info) }
