// Package smalltalk answers conversational intents and unrecognized input.
package smalltalk

import (
	"fmt"
)

const HandlerName = "smalltalk"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Greeting() string {
	return "Hello! I'm your AI assistant powered by Gemini. I have full control of your phone. Try asking me to turn on flashlight, make a call, check weather, or anything else!"
}

func (h *Handler) HowAreYou() string {
	return "I'm functioning perfectly! Ready to help you with complete phone control."
}

func (h *Handler) Thanks() string {
	return "You're very welcome! I'm always here to help."
}

// Unknown echoes the transcript back with usage hints.
func (h *Handler) Unknown(transcript string) string {
	return fmt.Sprintf("I heard: %s. Try commands like: turn on flashlight, call John, check weather, open camera, or ask me anything!", transcript)
}
