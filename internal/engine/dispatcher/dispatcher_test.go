package dispatcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/engine/capability"
	"voice-command-engine/internal/engine/capability/capabilitytest"
	"voice-command-engine/internal/engine/intent"
	"voice-command-engine/internal/handlers/aiquery"
	"voice-command-engine/internal/handlers/apps"
	"voice-command-engine/internal/handlers/calculator"
	"voice-command-engine/internal/handlers/clock"
	"voice-command-engine/internal/handlers/device"
	"voice-command-engine/internal/handlers/smalltalk"
	"voice-command-engine/internal/handlers/telephony"
	"voice-command-engine/internal/handlers/weatherinfo"
)

// newTestDispatcher wires a full dispatcher against the fake provider. The
// remote adapters are left unconfigured so no network calls happen.
func newTestDispatcher(t *testing.T, fake *capabilitytest.Fake) *Dispatcher {
	log := logger.NewTestLogger(t)

	return New(
		&Config{},
		device.NewHandler(&device.Config{}, fake, log),
		telephony.NewHandler(fake, log),
		apps.NewHandler(fake, log),
		clock.NewHandler(fake, log).WithClock(func() time.Time {
			return time.Date(2025, 3, 14, 15, 9, 0, 0, time.UTC)
		}),
		calculator.NewHandler(log),
		smalltalk.NewHandler(),
		aiquery.NewHandler(&aiquery.Config{Timeout: time.Second}, log),
		weatherinfo.NewHandler(&weatherinfo.Config{Timeout: time.Second}, nil, log),
		nil,
		log,
	)
}

func TestDispatcher_RoutesToHandlers(t *testing.T) {
	tests := []struct {
		name           string
		transcript     string
		setup          func(fake *capabilitytest.Fake)
		expectedIntent intent.Intent
		expectedReply  string
	}{
		{
			name:           "flashlight",
			transcript:     "turn on flashlight",
			expectedIntent: intent.Flashlight,
			expectedReply:  "Flashlight turned on",
		},
		{
			name:       "call with contact extraction",
			transcript: "call John",
			setup: func(fake *capabilitytest.Fake) {
				fake.Contacts["John"] = "+15550100"
			},
			expectedIntent: intent.Call,
			expectedReply:  "Calling John...",
		},
		{
			name:           "calculate",
			transcript:     "what is 2 plus 2",
			expectedIntent: intent.Calculate,
			expectedReply:  "2 and 2 equals 4",
		},
		{
			name:           "screenshot",
			transcript:     "take a screenshot",
			expectedIntent: intent.Screenshot,
			expectedReply:  "To take a screenshot, press Power + Volume Down buttons simultaneously",
		},
		{
			name:       "navigate with destination extraction",
			transcript: "navigate to central station",
			expectedIntent: intent.Navigate,
			expectedReply:  "Navigating to central station",
		},
		{
			name:           "time",
			transcript:     "what time is it",
			expectedIntent: intent.GetTime,
			expectedReply:  "The current time is 3:09 PM",
		},
		{
			name:           "date",
			transcript:     "what's the date today",
			expectedIntent: intent.GetDate,
			expectedReply:  "Today is March 14, 2025",
		},
		{
			name:       "alarm with time extraction",
			transcript: "set alarm for 7 pm",
			expectedIntent: intent.SetAlarm,
			expectedReply:  "Setting alarm for 7:00 PM",
		},
		{
			name:           "thanks",
			transcript:     "thank you",
			expectedIntent: intent.Thanks,
			expectedReply:  "You're very welcome! I'm always here to help.",
		},
		{
			name:           "unknown echoes transcript",
			transcript:     "do a barrel roll",
			expectedIntent: intent.Unknown,
			expectedReply:  "I heard: do a barrel roll. Try commands like: turn on flashlight, call John, check weather, open camera, or ask me anything!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := capabilitytest.New()
			if tt.setup != nil {
				tt.setup(fake)
			}
			d := newTestDispatcher(t, fake)

			result := d.Dispatch(context.Background(), tt.transcript)

			assert.Equal(t, tt.expectedIntent, result.Intent)
			assert.Equal(t, tt.expectedReply, result.Response)
		})
	}
}

func TestDispatcher_StateEvents(t *testing.T) {
	fake := capabilitytest.New()
	d := newTestDispatcher(t, fake)

	result := d.Dispatch(context.Background(), "turn on flashlight")

	require.NotNil(t, result.Event)
	assert.Equal(t, capability.FlashState, result.Event.Kind)
	assert.True(t, result.Event.On)

	result = d.Dispatch(context.Background(), "volume up")

	require.NotNil(t, result.Event)
	assert.Equal(t, capability.VolumeState, result.Event.Kind)
	assert.Equal(t, 10, result.Event.Level)

	result = d.Dispatch(context.Background(), "what time is it")
	assert.Nil(t, result.Event)
}

// Dispatch must produce a response for every input, including adversarial
// ones, and must never panic.
func TestDispatcher_Totality(t *testing.T) {
	fake := capabilitytest.New()
	d := newTestDispatcher(t, fake)

	transcripts := []string{
		"",
		" ",
		"turn on flashlight",
		"call",
		"open",
		"weather",
		"tell me about nothing",
		"set alarm",
		"divide 1 by 0",
		"☃ unicode ☃",
		"a very long sentence that matches no keywords at all whatsoever",
	}

	for _, transcript := range transcripts {
		result := d.Dispatch(context.Background(), transcript)
		assert.NotEmpty(t, result.Response, "transcript: %q", transcript)
		assert.NotEmpty(t, string(result.Intent), "transcript: %q", transcript)
	}
}

// The unconfigured remote adapters degrade to spoken configuration messages.
func TestDispatcher_UnconfiguredRemoteAdapters(t *testing.T) {
	fake := capabilitytest.New()
	d := newTestDispatcher(t, fake)

	result := d.Dispatch(context.Background(), "tell me about black holes")
	assert.Equal(t, intent.AskAI, result.Intent)
	assert.Contains(t, result.Response, "not configured")

	result = d.Dispatch(context.Background(), "weather in Mumbai")
	assert.Equal(t, intent.Weather, result.Intent)
	assert.Contains(t, result.Response, "Weather information unavailable")
}

func TestDispatcher_DefaultCity(t *testing.T) {
	fake := capabilitytest.New()
	d := newTestDispatcher(t, fake)

	// No city in the transcript; the configured default is used for the
	// lookup, which fails here because no weather API is configured.
	result := d.Dispatch(context.Background(), "weather please")
	assert.Equal(t, intent.Weather, result.Intent)
}
