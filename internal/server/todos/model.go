// Package todos keeps every user's todo items in one in-memory collection
// shared by all request handlers for the life of the process.
package todos

// Todo is a single item owned by one authenticated subject.
type Todo struct {
	ID      uint64 `json:"id"`
	OwnerID uint64 `json:"owner_id"`
	Title   string `json:"title"`
	Done    bool   `json:"completed"`
}
