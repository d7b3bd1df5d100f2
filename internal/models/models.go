package models

// Book status values as stored in the books collection.
const (
	BookBorrowed    = "borrowed"
	BookNotBorrowed = "not borrowed"
)

// StatusRegular is the membership tier assigned to every new user.
const StatusRegular = "Regular"

type User struct {
	Email    string `json:"email"`
	Password string `json:"-"`
	Book     string `json:"book"`   // title of the currently borrowed book, "" if none
	Status   string `json:"status"` // membership tier, e.g. "Regular"
}

type Book struct {
	ID     string `json:"_id"` // hex ObjectID
	Title  string `json:"title"`
	Author string `json:"author"`
	Image  string `json:"image"`
	Status string `json:"status"` // "borrowed" | "not borrowed"
}
