package service

import (
	"errors"

	"github.com/cliffordwilliam/ifabula-library/internal/models"
	"github.com/cliffordwilliam/ifabula-library/internal/repo"
)

type LibraryService interface {
	ListBooks() ([]models.Book, error)
	Borrow(title, email string) error
	Return(title, email string) error
}

type libraryService struct {
	books repo.BookRepo
	users repo.UserRepo
}

func NewLibraryService(b repo.BookRepo, u repo.UserRepo) LibraryService {
	return &libraryService{books: b, users: u}
}

func (s *libraryService) ListBooks() ([]models.Book, error) {
	return s.books.List()
}

// Borrow moves a book to "borrowed" and records the title on the
// requesting user. The two writes are independent store calls with no
// rollback; a failure between them leaves the records inconsistent.
func (s *libraryService) Borrow(title, email string) error {
	b, err := s.books.GetByTitle(title)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrBookNotFound
	}
	if err != nil {
		return err
	}
	if b.Status == models.BookBorrowed {
		return ErrAlreadyBorrowed
	}
	if err := s.books.SetStatus(title, models.BookBorrowed); err != nil {
		return err
	}
	return s.users.SetBorrowedBook(email, title)
}

// Return moves a book back to "not borrowed" and clears the requesting
// user's held title. The requester is not required to be the current
// borrower.
func (s *libraryService) Return(title, email string) error {
	b, err := s.books.GetByTitle(title)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrBookNotFound
	}
	if err != nil {
		return err
	}
	if b.Status == models.BookNotBorrowed {
		return ErrAlreadyReturned
	}
	if err := s.books.SetStatus(title, models.BookNotBorrowed); err != nil {
		return err
	}
	return s.users.SetBorrowedBook(email, "")
}
