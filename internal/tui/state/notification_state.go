package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the banners currently on screen. They are cleared
// by the next key press.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add appends a notification. A repeat of the newest one is dropped, so a
// notice raised during a drag and published again on drop shows once.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	if n := len(s.notifications); n > 0 {
		last := s.notifications[n-1]
		if last.Level == level && last.Message == message {
			return
		}
	}
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
