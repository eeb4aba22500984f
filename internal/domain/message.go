package domain

// MessageLevel grades log messages shown to the player.
type MessageLevel string

const (
	MessageInfo    MessageLevel = "info"
	MessageWarning MessageLevel = "warning"
	MessageDanger  MessageLevel = "danger"
	MessageSuccess MessageLevel = "success"
)

// Message is one entry of the in-game message log.
type Message struct {
	Day   int
	Text  string
	Level MessageLevel
	Tag   string
}
