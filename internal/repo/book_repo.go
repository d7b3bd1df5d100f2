package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cliffordwilliam/ifabula-library/internal/models"
)

type BookRepo interface {
	GetByTitle(title string) (*models.Book, error)
	SetStatus(title, status string) error
	List() ([]models.Book, error)
}

type bookRepoMongo struct{ d *mongo.Database }

func NewBookRepoMongo(d *mongo.Database) BookRepo { return &bookRepoMongo{d: d} }

// GetByTitle returns ErrNotFound when no book has the title.
func (r *bookRepoMongo) GetByTitle(title string) (*models.Book, error) {
	var doc struct {
		ID     primitive.ObjectID `bson:"_id"`
		Title  string             `bson:"title"`
		Author string             `bson:"author"`
		Image  string             `bson:"image"`
		Status string             `bson:"status"`
	}
	err := r.d.Collection("books").FindOne(context.Background(), bson.M{"title": title}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &models.Book{
		ID:     doc.ID.Hex(),
		Title:  doc.Title,
		Author: doc.Author,
		Image:  doc.Image,
		Status: doc.Status,
	}, nil
}

func (r *bookRepoMongo) SetStatus(title, status string) error {
	_, err := r.d.Collection("books").UpdateOne(context.Background(),
		bson.M{"title": title},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}

func (r *bookRepoMongo) List() ([]models.Book, error) {
	cur, err := r.d.Collection("books").Find(context.Background(), bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(context.Background())
	var out []models.Book
	for cur.Next(context.Background()) {
		var doc struct {
			ID     primitive.ObjectID `bson:"_id"`
			Title  string             `bson:"title"`
			Author string             `bson:"author"`
			Image  string             `bson:"image"`
			Status string             `bson:"status"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, models.Book{
			ID:     doc.ID.Hex(),
			Title:  doc.Title,
			Author: doc.Author,
			Image:  doc.Image,
			Status: doc.Status,
		})
	}
	return out, cur.Err()
}
