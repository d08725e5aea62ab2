// Package mood implements the aggregation engine: pure, deterministic
// functions over an in-memory sequence of mood entries. Nothing here touches
// I/O, and no function mutates its input.
package mood

import "strings"

// Kind is the closed enumeration of known moods. Labels arrive from clients as
// free-form "emoji word" strings; anything that does not resolve to a known
// kind falls back to Unknown rather than erroring.
type Kind int

const (
	Unknown Kind = iota
	Amazing
	Happy
	Good
	Okay
	Sad
	Angry
	Anxious
	Tired
)

// ParseKind resolves a free-form mood label to a Kind. The label is split on
// whitespace and the trailing token is matched case-insensitively, so
// "😊 Happy", "Happy" and "feeling happy" all resolve to Happy.
func ParseKind(label string) Kind {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return Unknown
	}

	switch strings.ToLower(fields[len(fields)-1]) {
	case "amazing":
		return Amazing
	case "happy":
		return Happy
	case "good":
		return Good
	case "okay":
		return Okay
	case "sad":
		return Sad
	case "angry":
		return Angry
	case "anxious":
		return Anxious
	case "tired":
		return Tired
	}
	return Unknown
}

// Score maps a kind to its 1-5 mood score. Unknown scores 2.
func (k Kind) Score() int {
	switch k {
	case Amazing:
		return 5
	case Happy:
		return 4
	case Good:
		return 3
	case Okay:
		return 2
	case Sad, Angry, Anxious:
		return 1
	case Tired:
		return 2
	}
	return 2
}

// Emoji maps a kind to its display glyph. Unknown gets a neutral glyph.
func (k Kind) Emoji() string {
	switch k {
	case Amazing:
		return "🤩"
	case Happy:
		return "😊"
	case Good:
		return "🙂"
	case Okay:
		return "😐"
	case Sad:
		return "😢"
	case Angry:
		return "😠"
	case Anxious:
		return "😰"
	case Tired:
		return "😴"
	}
	return "😐"
}

func (k Kind) String() string {
	switch k {
	case Amazing:
		return "Amazing"
	case Happy:
		return "Happy"
	case Good:
		return "Good"
	case Okay:
		return "Okay"
	case Sad:
		return "Sad"
	case Angry:
		return "Angry"
	case Anxious:
		return "Anxious"
	case Tired:
		return "Tired"
	}
	return "Unknown"
}
