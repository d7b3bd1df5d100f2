package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cliffordwilliam/ifabula-library/internal/models"
	"github.com/cliffordwilliam/ifabula-library/internal/service"
)

type BookHandler struct{ svc service.LibraryService }

func NewBookHandler(s service.LibraryService) *BookHandler { return &BookHandler{svc: s} }

func (h *BookHandler) List(c *gin.Context) {
	books, err := h.svc.ListBooks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if books == nil {
		books = []models.Book{}
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":   "Books retrieved successfully",
		"books": books,
	})
}

func (h *BookHandler) Borrow(c *gin.Context) {
	title := c.Param("title")
	email := c.GetString("email")
	if err := h.svc.Borrow(title, email); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":      "Book borrowed successfully",
		"book":     title,
		"borrower": email,
	})
}

func (h *BookHandler) Return(c *gin.Context) {
	title := c.Param("title")
	email := c.GetString("email")
	if err := h.svc.Return(title, email); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"msg":      "Book returned successfully",
		"book":     title,
		"borrower": email,
	})
}
