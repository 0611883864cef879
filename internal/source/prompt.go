package source

import (
	"fmt"
	"strings"

	"weekgrid/internal/domain"
)

// systemPrompt explains the expected reply to the model.
func systemPrompt(cal domain.Calendar) string {
	return fmt.Sprintf(`You are a helpful assistant that organizes a weekly schedule. You take in
information about a week and answer with a structured object holding start and
end times for each day. Each day can have multiple blocks of time; gaps between
blocks are breaks.

Answer with a single JSON object and nothing else:
- Use exactly these keys, one per day: %s.
- Each value is an array of blocks; each block is an array of two strings, the
  start time and the end time, formatted "hh:mm AM/PM" (for example "09:00 AM").
- A block must end after it starts on the same day.
- If a day has no breaks, return a single block with the day's start and end.
- If a day has nothing scheduled, return an empty array for it.`,
		strings.Join(cal, ", "))
}

// userPrompt wraps the description so instructions inside it stay data.
func userPrompt(description string) string {
	return "<user_input>" + strings.TrimSpace(description) + "</user_input>"
}

// stripFences removes a Markdown code fence around a reply, if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:] // drop the language tag line
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
