// Package source turns external schedule data into a domain.WeekInput.
//
// Two inputs are supported:
//
//   - Schedule documents: a JSON object mapping day labels to arrays of
//     ["hh:mm AM/PM", "hh:mm AM/PM"] pairs (Decode, Encode).
//   - Generated schedules: a free-form description sent to a text model that is
//     asked to answer with such a document (Generator, GeminiClient).
//
// # Strictness
//
// Model replies and user files go through the same decoder. It never evaluates
// input; it unmarshals JSON into plain types and validates every block. Unknown
// day labels, blocks that are not pairs, malformed times and blocks whose end is
// not after their start are rejected with a *ValidationError naming the day and
// block. An empty or null array means the day is Absent.
package source
