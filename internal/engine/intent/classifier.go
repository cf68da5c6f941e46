package intent

import "strings"

// rule pairs a predicate with the intent it selects.
type rule struct {
	intent Intent
	match  func(t string) bool
}

func containsAny(t string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(t, s) {
			return true
		}
	}
	return false
}

// rules is evaluated top to bottom; the first match wins. Ordering constraints
// that must hold:
//   - "call" before the AI question triggers, so "call John" is never routed
//     to the AI handler.
//   - the arithmetic keywords before the AI triggers, so "what is 2 plus 2"
//     calculates instead of asking the AI.
//   - the generic "open" rule after every device intent whose phrasing may
//     contain "open" (camera, bluetooth settings, and so on).
var rules = []rule{
	{Flashlight, func(t string) bool { return containsAny(t, "flash", "torch") }},
	{Call, func(t string) bool { return strings.Contains(t, "call") }},
	{SendMessage, func(t string) bool { return containsAny(t, "send message", "text") }},
	{Volume, func(t string) bool { return strings.Contains(t, "volume") }},
	{Camera, func(t string) bool { return containsAny(t, "camera", "photo", "picture") }},
	{Bluetooth, func(t string) bool { return strings.Contains(t, "bluetooth") }},
	{Wifi, func(t string) bool { return containsAny(t, "wifi", "wi-fi") }},
	{Brightness, func(t string) bool { return strings.Contains(t, "brightness") }},
	{Battery, func(t string) bool { return strings.Contains(t, "battery") }},
	{Navigate, func(t string) bool { return containsAny(t, "navigate", "direction") }},
	{PlayMusic, func(t string) bool { return containsAny(t, "play music", "play song") }},
	{Calculate, func(t string) bool {
		return containsAny(t, "calculate", "multiply", "divide", "plus", "minus")
	}},
	{Screenshot, func(t string) bool { return containsAny(t, "screenshot", "screen capture") }},
	{WebSearch, func(t string) bool { return containsAny(t, "search", "google") }},
	{Weather, func(t string) bool { return strings.Contains(t, "weather") }},
	{OpenApp, func(t string) bool { return strings.Contains(t, "open") }},
	{SetAlarm, func(t string) bool { return containsAny(t, "alarm", "wake me") }},
	{AskAI, func(t string) bool {
		return containsAny(t, "tell me about", "what is", "explain", "who is", "how to")
	}},
	{GetTime, func(t string) bool { return strings.Contains(t, "time") }},
	{GetDate, func(t string) bool { return strings.Contains(t, "date") }},
	{Greeting, func(t string) bool { return containsAny(t, "hello", "hi") }},
	{HowAreYou, func(t string) bool { return strings.Contains(t, "how are you") }},
	{Thanks, func(t string) bool { return strings.Contains(t, "thank") }},
}

// Classify maps a transcript to exactly one intent. It is total: every input,
// including the empty string, yields an intent, with Unknown as the fallback.
func Classify(transcript string) Intent {
	t := strings.ToLower(transcript)
	for _, r := range rules {
		if r.match(t) {
			return r.intent
		}
	}
	return Unknown
}
