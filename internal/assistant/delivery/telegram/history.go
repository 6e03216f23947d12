package telegram

import (
	"conversational-assistant/internal/generative"
)

// turns returns a copy of the stored history for chatID.
func (h *handler) turns(chatID int64) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	stored, _ := h.history.Get(chatID)
	out := make([]string, len(stored))
	copy(out, stored)
	return out
}

// remember appends one exchange and keeps only the newest historySize lines.
func (h *handler) remember(chatID int64, userText, reply string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	stored, _ := h.history.Get(chatID)
	next := make([]string, 0, len(stored)+2)
	next = append(next, stored...)
	next = append(next, generative.UserMarker+userText, generative.AssistantMarker+reply)
	if len(next) > h.historySize {
		next = next[len(next)-h.historySize:]
	}
	h.history.Add(chatID, next)
}

func (h *handler) forget(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.history.Remove(chatID)
}
