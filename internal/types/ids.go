package types

// ID types give each opaque identifier its own name so a task id cannot be
// passed where a column id is expected. Both are plain strings on the wire.

// ColumnID identifies a board column. The four fixed columns use short codes,
// user-created columns use generated tokens.
type ColumnID string

// TaskID identifies a task. Always a generated token.
type TaskID string

// Fixed column codes, in pipeline order
const (
	ColumnUnvalidated ColumnID = "UNVALIDATED"
	ColumnTodo        ColumnID = "TODO"
	ColumnDoing       ColumnID = "DOING"
	ColumnDone        ColumnID = "DONE"
)

// String returns the raw identifier
func (id ColumnID) String() string {
	return string(id)
}

func (id TaskID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset
func (id ColumnID) IsZero() bool {
	return id == ""
}

func (id TaskID) IsZero() bool {
	return id == ""
}
