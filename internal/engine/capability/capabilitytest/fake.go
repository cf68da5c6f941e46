// Package capabilitytest provides a scriptable in-memory capability.Provider
// for handler tests.
package capabilitytest

import (
	"sort"
	"strings"

	"voice-command-engine/internal/engine/capability"
)

// Fake implements capability.Provider with recordable calls and per-operation
// scripted failures. The zero value grants every permission and succeeds on
// every operation.
type Fake struct {
	// FailOn forces an error for the named operation ("SetTorch", "Dial", ...).
	FailOn map[string]error

	// Denied lists permissions HasPermission reports as missing.
	Denied map[capability.Permission]bool

	// Contacts maps display names to phone numbers for LookupContactNumber.
	Contacts map[string]string

	// Installed maps package IDs LaunchApp reports as installed.
	Installed map[string]bool

	Audio   capability.AudioLevels
	Battery capability.BatteryStatus

	// Calls records operation names in invocation order.
	Calls []string

	// Observable side effects.
	Torch       bool
	VolumeSet   int
	DialedTo    string
	MessagedTo  string
	AlarmHour   int
	AlarmMinute int
	NavigatedTo string
	LaunchedApp string
	OpenedURL   string
	OpenedPanel capability.SettingsPanel
}

func New() *Fake {
	return &Fake{
		FailOn:    map[string]error{},
		Denied:    map[capability.Permission]bool{},
		Contacts:  map[string]string{},
		Installed: map[string]bool{},
		Audio:     capability.AudioLevels{Current: 8, Max: 15},
		Battery:   capability.BatteryStatus{Percent: 80},
	}
}

func (f *Fake) record(op string) error {
	f.Calls = append(f.Calls, op)
	return f.FailOn[op]
}

func (f *Fake) Dial(number string) error {
	if err := f.record("Dial"); err != nil {
		return err
	}
	f.DialedTo = number
	return nil
}

func (f *Fake) ComposeMessage(contact, body string) error {
	if err := f.record("ComposeMessage"); err != nil {
		return err
	}
	f.MessagedTo = contact
	return nil
}

func (f *Fake) SetTorch(on bool) error {
	if err := f.record("SetTorch"); err != nil {
		return err
	}
	f.Torch = on
	return nil
}

func (f *Fake) AudioLevels() (capability.AudioLevels, error) {
	if err := f.record("AudioLevels"); err != nil {
		return capability.AudioLevels{}, err
	}
	return f.Audio, nil
}

func (f *Fake) SetVolume(level int) error {
	if err := f.record("SetVolume"); err != nil {
		return err
	}
	f.VolumeSet = level
	f.Audio.Current = level
	return nil
}

func (f *Fake) LaunchCamera(video bool) error {
	return f.record("LaunchCamera")
}

func (f *Fake) OpenSettingsPanel(panel capability.SettingsPanel) error {
	if err := f.record("OpenSettingsPanel"); err != nil {
		return err
	}
	f.OpenedPanel = panel
	return nil
}

func (f *Fake) BatteryStatus() (capability.BatteryStatus, error) {
	if err := f.record("BatteryStatus"); err != nil {
		return capability.BatteryStatus{}, err
	}
	return f.Battery, nil
}

func (f *Fake) LaunchNavigation(destination string) error {
	if err := f.record("LaunchNavigation"); err != nil {
		return err
	}
	f.NavigatedTo = destination
	return nil
}

func (f *Fake) LaunchMusicPlayer() error {
	return f.record("LaunchMusicPlayer")
}

func (f *Fake) LaunchApp(packageID string) (bool, error) {
	if err := f.record("LaunchApp"); err != nil {
		return false, err
	}
	if !f.Installed[packageID] {
		return false, nil
	}
	f.LaunchedApp = packageID
	return true, nil
}

func (f *Fake) SetAlarm(hour, minute int) error {
	if err := f.record("SetAlarm"); err != nil {
		return err
	}
	f.AlarmHour, f.AlarmMinute = hour, minute
	return nil
}

func (f *Fake) LookupContactNumber(namePattern string) (string, bool, error) {
	if err := f.record("LookupContactNumber"); err != nil {
		return "", false, err
	}
	pattern := strings.ToLower(namePattern)
	names := make([]string, 0, len(f.Contacts))
	for name := range f.Contacts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), pattern) {
			return f.Contacts[name], true, nil
		}
	}
	return "", false, nil
}

func (f *Fake) OpenURL(url string) error {
	if err := f.record("OpenURL"); err != nil {
		return err
	}
	f.OpenedURL = url
	return nil
}

func (f *Fake) HasPermission(p capability.Permission) bool {
	f.Calls = append(f.Calls, "HasPermission")
	return !f.Denied[p]
}
