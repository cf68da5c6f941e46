package capability

import (
	"sort"
	"strings"

	"voice-command-engine/internal/common/logger"
)

// Loopback is a Provider for hosts without real device bindings. Every
// operation succeeds and is logged, so the engine can run as a standalone
// service. Contacts are served from a static directory.
type Loopback struct {
	logger   logger.Logger
	contacts map[string]string
}

func NewLoopback(contacts map[string]string, log logger.Logger) *Loopback {
	if contacts == nil {
		contacts = map[string]string{}
	}
	return &Loopback{
		logger:   log.WithFields(map[string]interface{}{"component": "capability"}),
		contacts: contacts,
	}
}

func (l *Loopback) act(op string, fields map[string]interface{}) {
	l.logger.Info("capability invoked", mergeFields(map[string]interface{}{"op": op}, fields))
}

func mergeFields(dst, src map[string]interface{}) map[string]interface{} {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (l *Loopback) Dial(number string) error {
	l.act("dial", map[string]interface{}{"number": number})
	return nil
}

func (l *Loopback) ComposeMessage(contact, body string) error {
	l.act("composeMessage", map[string]interface{}{"contact": contact})
	return nil
}

func (l *Loopback) SetTorch(on bool) error {
	l.act("setTorch", map[string]interface{}{"on": on})
	return nil
}

func (l *Loopback) AudioLevels() (AudioLevels, error) {
	return AudioLevels{Current: 8, Max: 15}, nil
}

func (l *Loopback) SetVolume(level int) error {
	l.act("setVolume", map[string]interface{}{"level": level})
	return nil
}

func (l *Loopback) LaunchCamera(video bool) error {
	l.act("launchCamera", map[string]interface{}{"video": video})
	return nil
}

func (l *Loopback) OpenSettingsPanel(panel SettingsPanel) error {
	l.act("openSettingsPanel", map[string]interface{}{"panel": string(panel)})
	return nil
}

func (l *Loopback) BatteryStatus() (BatteryStatus, error) {
	return BatteryStatus{Percent: 100, IsCharging: false}, nil
}

func (l *Loopback) LaunchNavigation(destination string) error {
	l.act("launchNavigation", map[string]interface{}{"destination": destination})
	return nil
}

func (l *Loopback) LaunchMusicPlayer() error {
	l.act("launchMusicPlayer", nil)
	return nil
}

func (l *Loopback) LaunchApp(packageID string) (bool, error) {
	l.act("launchApp", map[string]interface{}{"packageId": packageID})
	return true, nil
}

func (l *Loopback) SetAlarm(hour, minute int) error {
	l.act("setAlarm", map[string]interface{}{"hour": hour, "minute": minute})
	return nil
}

func (l *Loopback) LookupContactNumber(namePattern string) (string, bool, error) {
	// Sorted keys keep "first match wins" stable across lookups.
	names := make([]string, 0, len(l.contacts))
	for name := range l.contacts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if containsFold(name, namePattern) {
			return l.contacts[name], true, nil
		}
	}
	return "", false, nil
}

func (l *Loopback) OpenURL(url string) error {
	l.act("openURL", map[string]interface{}{"url": url})
	return nil
}

func (l *Loopback) HasPermission(p Permission) bool {
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
