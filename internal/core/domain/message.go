package domain

// Message is a text notification.
type Message struct {
	Content string
}
