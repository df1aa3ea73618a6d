package service

// Notifier pushes a real-time message to a user's open connections. The
// websocket hub implements this; services depend only on the interface.
type Notifier interface {
	NotifyUser(userID, msgType string, payload interface{})
}
