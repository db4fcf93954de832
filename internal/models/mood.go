package models

// Mood is one member's current mood, chosen from a fixed set.
type Mood string

const (
	MoodAmazing  Mood = "amazing"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodTired    Mood = "tired"
	MoodStressed Mood = "stressed"
	MoodSad      Mood = "sad"
)

// Valid reports whether m is one of the recognized moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodAmazing, MoodGood, MoodOkay, MoodTired, MoodStressed, MoodSad:
		return true
	}
	return false
}

// SignalKind identifies a fire-and-forget emotion signal sent to the partner.
type SignalKind string

const (
	SignalLove     SignalKind = "love"
	SignalMiss     SignalKind = "miss-you"
	SignalThinking SignalKind = "thinking-of-you"
	SignalSurprise SignalKind = "surprise"
)

// Valid reports whether k is one of the recognized signal kinds.
func (k SignalKind) Valid() bool {
	switch k {
	case SignalLove, SignalMiss, SignalThinking, SignalSurprise:
		return true
	}
	return false
}
