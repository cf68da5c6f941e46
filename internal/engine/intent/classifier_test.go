package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_KeywordRouting(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   Intent
	}{
		{"flashlight on", "turn on flashlight", Flashlight},
		{"torch synonym", "switch the torch off", Flashlight},
		{"call contact", "call John", Call},
		{"send text", "text Sarah I am late", SendMessage},
		{"send message", "send message to mom", SendMessage},
		{"volume up", "turn the volume up", Volume},
		{"camera", "open the camera", Camera},
		{"photo synonym", "take a photo", Camera},
		{"bluetooth", "enable bluetooth", Bluetooth},
		{"wifi", "turn on wifi", Wifi},
		{"wifi hyphenated", "connect to wi-fi", Wifi},
		{"brightness", "increase brightness", Brightness},
		{"battery", "how much battery is left", Battery},
		{"navigate", "navigate to the airport", Navigate},
		{"directions synonym", "give me direction to downtown", Navigate},
		{"play music", "play music please", PlayMusic},
		{"play song", "play song by Queen", PlayMusic},
		{"calculate", "calculate 25 times 4", Calculate},
		{"screenshot", "take a screenshot", Screenshot},
		{"screen capture", "do a screen capture", Screenshot},
		{"search", "search for italian restaurants", WebSearch},
		{"google synonym", "google the capital of France", WebSearch},
		{"weather", "weather in Mumbai", Weather},
		{"open app", "open youtube", OpenApp},
		{"set alarm", "set alarm for 6 30 am", SetAlarm},
		{"tell me about", "tell me about black holes", AskAI},
		{"who is", "who is Marie Curie", AskAI},
		{"time", "what time is it", GetTime},
		{"date", "what's the date today", GetDate},
		{"hello", "hello there", Greeting},
		{"how are you", "how are you doing", HowAreYou},
		{"thanks", "thank you so much", Thanks},
		{"gibberish", "blorp fizzle", Unknown},
		{"empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.transcript))
		})
	}
}

// Rule order encodes precedence; these inputs match several rules and must
// land on the earliest one.
func TestClassify_PriorityOrdering(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   Intent
	}{
		{"flashlight beats open", "turn on flashlight", Flashlight},
		{"call beats weather", "call John about the weather", Call},
		{"call beats AI triggers", "call me about how to cook", Call},
		{"calculate beats what-is", "what is 2 plus 2", Calculate},
		{"plus routes to calculate", "2 plus 2", Calculate},
		{"device beats open", "open the camera", Camera},
		{"bluetooth beats open", "open bluetooth settings", Bluetooth},
		{"weather beats open", "open the weather for Delhi", Weather},
		{"search beats open", "search for open positions", WebSearch},
		{"open app after devices", "open spotify", OpenApp},
		{"ai trigger after open", "tell me about the weather patterns", Weather},
		{"time after ai triggers", "what time is it", GetTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.transcript))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Flashlight, Classify("TURN ON FLASHLIGHT"))
	assert.Equal(t, Call, Classify("Call John"))
	assert.Equal(t, Weather, Classify("WEATHER in Pune"))
}

// Classification is a pure function of the transcript.
func TestClassify_Idempotent(t *testing.T) {
	transcripts := []string{
		"turn on flashlight",
		"call John about the weather",
		"what is 2 plus 2",
		"random nonsense here",
		"",
	}

	for _, transcript := range transcripts {
		first := Classify(transcript)
		second := Classify(transcript)
		assert.Equal(t, first, second, "transcript: %q", transcript)
	}
}

func TestClassify_NeverEmpty(t *testing.T) {
	transcripts := []string{
		"", " ", "zzzz", "open", "the quick brown fox", "123456",
	}

	for _, transcript := range transcripts {
		result := Classify(transcript)
		assert.NotEmpty(t, string(result), "transcript: %q", transcript)
	}
}
