package calculator

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/metrics"
)

func TestHandler_Calculate(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		expected   string
	}{
		{"multiply", "calculate 25 times 4", "25 and 4 equals 100"},
		{"add word", "what is 2 plus 2", "2 and 2 equals 4"},
		{"add symbol", "3 + 9", "3 and 9 equals 12"},
		{"subtract", "calculate 10 minus 4", "10 and 4 equals 6"},
		{"divide whole", "divide 10 by 5", "10 and 5 equals 2.0"},
		{"divide fractional", "divide 10 by 4", "10 and 4 equals 2.5"},
		{"divide by zero", "divide 10 by 0", "Cannot divide by zero"},
		{"one number", "calculate 7", "Please provide two numbers for calculation"},
		{"no numbers", "calculate something", "Please provide two numbers for calculation"},
		{"no operator", "calculate 3 and 4", "Unknown operation"},
		{"extra operands ignored", "calculate 2 plus 3 plus 4", "2 and 3 equals 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(logger.NewTestLogger(t))
			assert.Equal(t, tt.expected, handler.Calculate(tt.transcript))
		})
	}
}

func TestHandler_Calculate_MissingOperandsCounted(t *testing.T) {
	counter := metrics.CommandFailures.WithLabelValues("calculate", "INPUT_MALFORMED")
	before := testutil.ToFloat64(counter)

	handler := NewHandler(logger.NewTestLogger(t))
	assert.Equal(t, "Please provide two numbers for calculation", handler.Calculate("calculate 7"))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestHandler_Calculate_Pure(t *testing.T) {
	handler := NewHandler(logger.NewTestLogger(t))
	first := handler.Calculate("calculate 25 times 4")
	second := handler.Calculate("calculate 25 times 4")
	assert.Equal(t, first, second)
}
