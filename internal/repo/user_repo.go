package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cliffordwilliam/ifabula-library/internal/models"
)

// ErrNotFound is returned by lookups that match no document.
var ErrNotFound = errors.New("not found")

// ErrNoInsertedID is returned when the store acknowledges an insert
// without reporting the new document's identifier.
var ErrNoInsertedID = errors.New("insert reported no id")

type UserRepo interface {
	GetByEmail(email string) (*models.User, error)
	Create(u models.User) (id string, err error)
	SetBorrowedBook(email, title string) error
}

type userRepoMongo struct{ d *mongo.Database }

func NewUserRepoMongo(d *mongo.Database) UserRepo { return &userRepoMongo{d: d} }

// GetByEmail returns ErrNotFound when no user has the email.
func (r *userRepoMongo) GetByEmail(email string) (*models.User, error) {
	var doc struct {
		Email    string `bson:"email"`
		Password string `bson:"password"`
		Book     string `bson:"book"`
		Status   string `bson:"status"`
	}
	err := r.d.Collection("users").FindOne(context.Background(), bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &models.User{Email: doc.Email, Password: doc.Password, Book: doc.Book, Status: doc.Status}, nil
}

func (r *userRepoMongo) Create(u models.User) (string, error) {
	res, err := r.d.Collection("users").InsertOne(context.Background(), bson.M{
		"email":    u.Email,
		"password": u.Password,
		"book":     u.Book,
		"status":   u.Status,
	})
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", ErrNoInsertedID
	}
	return oid.Hex(), nil
}

// SetBorrowedBook records which title the user currently holds; "" clears it.
func (r *userRepoMongo) SetBorrowedBook(email, title string) error {
	_, err := r.d.Collection("users").UpdateOne(context.Background(),
		bson.M{"email": email},
		bson.M{"$set": bson.M{"book": title}},
	)
	return err
}
