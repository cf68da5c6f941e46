// Package capability defines the device-facing operations the engine calls
// through. The hosting application owns the implementation and its state; the
// engine only holds a reference and never mutates device state directly.
package capability

// SettingsPanel identifies a device settings screen.
type SettingsPanel string

const (
	PanelBluetooth SettingsPanel = "bluetooth"
	PanelWifi      SettingsPanel = "wifi"
	PanelDisplay   SettingsPanel = "display"
)

// Permission identifies a host permission the engine must hold before
// attempting the corresponding action.
type Permission string

const (
	PermissionPhoneCall Permission = "phone_call"
)

// AudioLevels reports the current and maximum media volume.
type AudioLevels struct {
	Current int
	Max     int
}

// BatteryStatus reports the charge level and charging state.
type BatteryStatus struct {
	Percent    int
	IsCharging bool
}

// Provider is the abstract collection of device operations consumed by the
// action handlers. Implementations live in the hosting application.
type Provider interface {
	Dial(number string) error
	ComposeMessage(contact, body string) error
	SetTorch(on bool) error
	AudioLevels() (AudioLevels, error)
	SetVolume(level int) error
	LaunchCamera(video bool) error
	OpenSettingsPanel(panel SettingsPanel) error
	BatteryStatus() (BatteryStatus, error)
	LaunchNavigation(destination string) error
	LaunchMusicPlayer() error

	// LaunchApp starts the app identified by packageID. The bool reports
	// whether the app is installed; err reports launch failures.
	LaunchApp(packageID string) (bool, error)

	SetAlarm(hour, minute int) error

	// LookupContactNumber resolves a display-name pattern to a phone number
	// (case-insensitive partial match, first match wins). ok is false when no
	// contact matches.
	LookupContactNumber(namePattern string) (number string, ok bool, err error)

	OpenURL(url string) error
	HasPermission(p Permission) bool
}
