// Package intent classifies a lowercased transcript into exactly one intent
// using an ordered rule table. The first matching rule wins; rule order encodes
// priority and must not be changed without re-auditing keyword overlap.
package intent

// Intent is the classified category of a user request.
type Intent string

const (
	Flashlight  Intent = "flashlight"
	Call        Intent = "call"
	SendMessage Intent = "send-message"
	Volume      Intent = "volume"
	Camera      Intent = "camera"
	Bluetooth   Intent = "bluetooth"
	Wifi        Intent = "wifi"
	Brightness  Intent = "brightness"
	Battery     Intent = "battery"
	Navigate    Intent = "navigate"
	PlayMusic   Intent = "play-music"
	Calculate   Intent = "calculate"
	Screenshot  Intent = "screenshot"
	WebSearch   Intent = "web-search"
	Weather     Intent = "weather"
	OpenApp     Intent = "open-app"
	SetAlarm    Intent = "set-alarm"
	AskAI       Intent = "ask-ai"
	GetTime     Intent = "get-time"
	GetDate     Intent = "get-date"
	Greeting    Intent = "greeting"
	HowAreYou   Intent = "how-are-you"
	Thanks      Intent = "thanks"
	Unknown     Intent = "unknown"
)

func (i Intent) String() string {
	return string(i)
}
