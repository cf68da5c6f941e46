// Package calculator evaluates spoken arithmetic over two operands.
package calculator

import (
	"fmt"
	"math"
	"strconv"

	stderrors "voice-command-engine/internal/common/errors"
	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/metrics"
	"voice-command-engine/internal/engine/extract"
)

const HandlerName = "calculator"

type Handler struct {
	logger logger.Logger
}

func NewHandler(log logger.Logger) *Handler {
	return &Handler{
		logger: log.WithFields(map[string]interface{}{"handler": HandlerName}),
	}
}

// Calculate parses operands and an operator out of the transcript and applies
// the operator to the first two operands.
func (h *Handler) Calculate(transcript string) string {
	operands, op := extract.Arithmetic(transcript)
	if len(operands) < 2 {
		stdErr := stderrors.NewInputMalformedError(fmt.Sprintf("found %d operand(s), need 2", len(operands)))
		metrics.CommandFailures.WithLabelValues("calculate", string(stdErr.Code)).Inc()
		h.logger.WithError(stdErr).Warn("operand extraction failed", map[string]interface{}{
			"operands": len(operands),
		})
		return "Please provide two numbers for calculation"
	}

	a, b := operands[0], operands[1]

	switch op {
	case extract.OpAdd:
		return fmt.Sprintf("%d and %d equals %d", a, b, a+b)
	case extract.OpSubtract:
		return fmt.Sprintf("%d and %d equals %d", a, b, a-b)
	case extract.OpMultiply:
		return fmt.Sprintf("%d and %d equals %d", a, b, a*b)
	case extract.OpDivide:
		if b == 0 {
			stdErr := stderrors.NewDivideByZeroError()
			metrics.CommandFailures.WithLabelValues("calculate", string(stdErr.Code)).Inc()
			h.logger.WithError(stdErr).Warn("division by zero", map[string]interface{}{
				"dividend": a,
			})
			return "Cannot divide by zero"
		}
		return fmt.Sprintf("%d and %d equals %s", a, b, formatQuotient(float64(a)/float64(b)))
	default:
		return "Unknown operation"
	}
}

// formatQuotient keeps one decimal place for whole quotients and the shortest
// exact form otherwise, so 10/5 reads "2.0" and 10/4 reads "2.5".
func formatQuotient(r float64) string {
	if r == math.Trunc(r) {
		return fmt.Sprintf("%.1f", r)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
