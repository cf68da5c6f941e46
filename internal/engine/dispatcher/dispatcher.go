// Package dispatcher routes a classified transcript to its handler and
// collects the spoken response. Dispatch is total: every transcript produces
// a Result, never an error.
package dispatcher

import (
	"context"
	"time"

	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/metrics"
	"voice-command-engine/internal/common/observability"
	"voice-command-engine/internal/engine/capability"
	"voice-command-engine/internal/engine/extract"
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

// Result is the outcome of interpreting one transcript.
type Result struct {
	Intent   intent.Intent          `json:"intent"`
	Response string                 `json:"response"`
	Event    *capability.StateEvent `json:"event,omitempty"`
}

// Config holds dispatch-level tunables.
type Config struct {
	DefaultCity string
}

func (c *Config) applyDefaults() {
	if c.DefaultCity == "" {
		c.DefaultCity = extract.DefaultCity
	}
}

// Dispatcher owns one handler per intent family. It holds no per-request
// state; the same instance serves concurrent dispatches.
type Dispatcher struct {
	config *Config
	obs    *observability.Observability
	logger logger.Logger

	device      *device.Handler
	telephony   *telephony.Handler
	apps        *apps.Handler
	clock       *clock.Handler
	calculator  *calculator.Handler
	smalltalk   *smalltalk.Handler
	aiquery     *aiquery.Handler
	weatherinfo *weatherinfo.Handler
}

// New wires the handler set. obs may be nil when OTel metrics are disabled.
func New(
	config *Config,
	deviceH *device.Handler,
	telephonyH *telephony.Handler,
	appsH *apps.Handler,
	clockH *clock.Handler,
	calculatorH *calculator.Handler,
	smalltalkH *smalltalk.Handler,
	aiqueryH *aiquery.Handler,
	weatherinfoH *weatherinfo.Handler,
	obs *observability.Observability,
	log logger.Logger,
) *Dispatcher {
	config.applyDefaults()
	return &Dispatcher{
		config:      config,
		obs:         obs,
		logger:      log.WithFields(map[string]interface{}{"component": "dispatcher"}),
		device:      deviceH,
		telephony:   telephonyH,
		apps:        appsH,
		clock:       clockH,
		calculator:  calculatorH,
		smalltalk:   smalltalkH,
		aiquery:     aiqueryH,
		weatherinfo: weatherinfoH,
	}
}

// Dispatch classifies the transcript, runs the matching handler, and returns
// the spoken response plus any observable device-state change.
func (d *Dispatcher) Dispatch(ctx context.Context, transcript string) Result {
	start := time.Now()

	classified := intent.Classify(transcript)
	result := Result{Intent: classified}

	switch classified {
	case intent.Flashlight:
		result.Response, result.Event = d.device.Flashlight(transcript)
	case intent.Call:
		result.Response = d.telephony.Call(extract.ContactName(transcript))
	case intent.SendMessage:
		result.Response = d.telephony.SendMessage(extract.ContactName(transcript))
	case intent.Volume:
		result.Response, result.Event = d.device.AdjustVolume(transcript)
	case intent.Camera:
		result.Response = d.device.OpenCamera(transcript)
	case intent.Bluetooth:
		result.Response = d.device.OpenBluetoothSettings()
	case intent.Wifi:
		result.Response = d.device.OpenWifiSettings()
	case intent.Brightness:
		result.Response = d.device.OpenDisplaySettings()
	case intent.Battery:
		result.Response = d.device.BatteryInfo()
	case intent.Navigate:
		result.Response = d.apps.Navigate(extract.Destination(transcript))
	case intent.PlayMusic:
		result.Response = d.apps.PlayMusic()
	case intent.Calculate:
		result.Response = d.calculator.Calculate(transcript)
	case intent.Screenshot:
		result.Response = d.device.Screenshot()
	case intent.WebSearch:
		result.Response = d.apps.WebSearch(transcript)
	case intent.Weather:
		result.Response = d.weatherinfo.CurrentConditions(ctx, extract.City(transcript, d.config.DefaultCity))
	case intent.OpenApp:
		result.Response = d.apps.OpenApp(transcript)
	case intent.SetAlarm:
		hour, minute := extract.AlarmTime(transcript)
		result.Response = d.clock.SetAlarm(hour, minute)
	case intent.AskAI:
		result.Response = d.aiquery.Answer(ctx, transcript)
	case intent.GetTime:
		result.Response = d.clock.CurrentTime()
	case intent.GetDate:
		result.Response = d.clock.CurrentDate()
	case intent.Greeting:
		result.Response = d.smalltalk.Greeting()
	case intent.HowAreYou:
		result.Response = d.smalltalk.HowAreYou()
	case intent.Thanks:
		result.Response = d.smalltalk.Thanks()
	default:
		result.Response = d.smalltalk.Unknown(transcript)
	}

	duration := time.Since(start)
	metrics.CommandsDispatched.WithLabelValues(classified.String()).Inc()
	metrics.CommandDuration.WithLabelValues(classified.String()).Observe(duration.Seconds())
	if d.obs != nil {
		d.obs.RecordCommandProcessed(ctx, classified.String())
		d.obs.RecordCommandDuration(ctx, duration, classified.String())
	}

	d.logger.Info("command dispatched", map[string]interface{}{
		"intent":     classified.String(),
		"durationMs": duration.Milliseconds(),
	})

	return result
}
