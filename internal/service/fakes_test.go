package service

import (
	"github.com/cliffordwilliam/ifabula-library/internal/models"
	"github.com/cliffordwilliam/ifabula-library/internal/repo"
)

// In-memory repo fakes. Maps are keyed the same way the collections
// are: users by email, books by title.

type memUsers struct {
	users map[string]*models.User
	noID  bool // simulate an insert that reports no id
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*models.User{}} }

func (m *memUsers) GetByEmail(email string) (*models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Create(u models.User) (string, error) {
	if m.noID {
		return "", repo.ErrNoInsertedID
	}
	m.users[u.Email] = &u
	return "000000000000000000000000", nil
}

func (m *memUsers) SetBorrowedBook(email, title string) error {
	if u, ok := m.users[email]; ok {
		u.Book = title
	}
	return nil
}

type memBooks struct {
	books map[string]*models.Book
}

func newMemBooks(bs ...models.Book) *memBooks {
	m := &memBooks{books: map[string]*models.Book{}}
	for i := range bs {
		b := bs[i]
		m.books[b.Title] = &b
	}
	return m
}

func (m *memBooks) GetByTitle(title string) (*models.Book, error) {
	b, ok := m.books[title]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memBooks) SetStatus(title, status string) error {
	if b, ok := m.books[title]; ok {
		b.Status = status
	}
	return nil
}

func (m *memBooks) List() ([]models.Book, error) {
	var out []models.Book
	for _, b := range m.books {
		out = append(out, *b)
	}
	return out, nil
}
