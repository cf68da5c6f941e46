package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactName(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   string
	}{
		{"after call", "call John", "John"},
		{"multi word name", "call John Smith", "John Smith"},
		{"after text", "text Sarah", "Sarah"},
		{"after message word", "send message to mom", "to mom"},
		{"anchor inside word", "calling Bob", "Bob"},
		{"casing preserved", "call McKenzie O'Brien", "McKenzie O'Brien"},
		{"uppercase anchor", "Call JOHN", "JOHN"},
		{"anchor is last word", "please call", "contact"},
		{"no anchor", "dial someone", "contact"},
		{"empty", "", "contact"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContactName(tt.transcript))
		})
	}
}

func TestCity(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   string
	}{
		{"after in", "weather in mumbai", "Mumbai"},
		{"after at", "weather at delhi today", "Delhi"},
		{"after for", "forecast for pune", "Pune"},
		{"first anchor wins", "weather in chennai for tomorrow", "Chennai"},
		{"anchor is last word", "what is the weather in", "Hyderabad"},
		{"no anchor", "weather today", "Hyderabad"},
		{"standalone words only", "raining berlin", "Hyderabad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, City(tt.transcript, ""))
		})
	}
}

func TestCity_ConfiguredDefault(t *testing.T) {
	assert.Equal(t, "Berlin", City("weather today", "Berlin"))
	assert.Equal(t, "Mumbai", City("weather in mumbai", "Berlin"))
}

func TestDestination(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   string
	}{
		{"single word", "navigate to airport", "airport"},
		{"multi word", "navigate to central railway station", "central railway station"},
		{"standalone to only", "navigate toward downtown", "destination"},
		{"to is last word", "navigate to", "destination"},
		{"no to", "navigate", "destination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Destination(tt.transcript))
		})
	}
}

func TestAlarmTime(t *testing.T) {
	tests := []struct {
		name           string
		transcript     string
		expectedHour   int
		expectedMinute int
	}{
		{"pm conversion", "set alarm for 7 pm", 19, 0},
		{"am unchanged", "set alarm for 6 30 am", 6, 30},
		{"colon separator", "wake me at 5:45 pm", 17, 45},
		{"midnight", "set alarm for 12 00 am", 0, 0},
		{"noon stays noon", "set alarm for 12 30 pm", 12, 30},
		{"24 hour style", "alarm at 18:15", 18, 15},
		{"no time defaults", "set an alarm", 7, 0},
		{"empty", "", 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute := AlarmTime(tt.transcript)
			assert.Equal(t, tt.expectedHour, hour)
			assert.Equal(t, tt.expectedMinute, minute)
		})
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name             string
		transcript       string
		expectedOperands []int
		expectedOp       Operator
	}{
		{"multiply", "calculate 25 times 4", []int{25, 4}, OpMultiply},
		{"plus word", "what is 2 plus 2", []int{2, 2}, OpAdd},
		{"plus symbol", "3 + 9", []int{3, 9}, OpAdd},
		{"minus", "calculate 10 minus 4", []int{10, 4}, OpSubtract},
		{"divide", "divide 10 by 0", []int{10, 0}, OpDivide},
		{"encounter order", "calculate 100 divide 5", []int{100, 5}, OpDivide},
		{"single operand", "calculate 7", []int{7}, OpNone},
		{"no numbers", "calculate things", nil, OpNone},
		{"add beats divide", "add 4 divide 2", []int{4, 2}, OpAdd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			operands, op := Arithmetic(tt.transcript)
			assert.Equal(t, tt.expectedOperands, operands)
			assert.Equal(t, tt.expectedOp, op)
		})
	}
}

func TestSearchQuery(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   string
	}{
		{"search for", "search for italian restaurants", "italian restaurants"},
		{"bare search", "search golang generics", "golang generics"},
		{"google trigger", "google capital of france", "capital of france"},
		{"only trigger words", "search", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SearchQuery(tt.transcript))
		})
	}
}
