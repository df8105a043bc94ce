package models

// Notice is an advisory message for the user. It never signals failure of
// the operation that produced it; it only explains why nothing changed.
type Notice struct {
	ID      string // Stable id so repeated notices can replace each other
	Message string
	Detail  string
}

// InvalidMoveNotice is produced when a drag tries to skip a column
func InvalidMoveNotice() *Notice {
	return &Notice{
		ID:      NoticeInvalidMove,
		Message: "Move not allowed: only adjacent columns",
		Detail:  "The workflow must progress step by step.",
	}
}
