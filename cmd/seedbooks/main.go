package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cliffordwilliam/ifabula-library/internal/config"
	"github.com/cliffordwilliam/ifabula-library/internal/db"
	"github.com/cliffordwilliam/ifabula-library/internal/models"
)

// Starter catalog. Upserted by title so reruns are harmless: existing
// records keep their current borrow status.
var catalog = []struct {
	Title  string
	Author string
	Image  string
}{
	{"1984", "George Orwell", "https://covers.openlibrary.org/b/id/7222246-M.jpg"},
	{"Animal Farm", "George Orwell", "https://covers.openlibrary.org/b/id/11153223-M.jpg"},
	{"The Art of War", "Sun Tzu", "https://covers.openlibrary.org/b/id/8231996-M.jpg"},
	{"Romeo and Juliet", "William Shakespeare", "https://covers.openlibrary.org/b/id/8257991-M.jpg"},
	{"The Three Musketeers", "Alexandre Dumas", "https://covers.openlibrary.org/b/id/8232001-M.jpg"},
	{"The Fellowship of the Ring", "J.R.R. Tolkien", "https://covers.openlibrary.org/b/id/8474036-M.jpg"},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	mc, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}

	seeded, err := seed(ctx, mc.Database(cfg.DBName).Collection("books"))
	if derr := mc.Disconnect(ctx); derr != nil {
		log.Printf("mongo disconnect: %v", derr)
	}
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeded %d new books (%d total in catalog)", seeded, len(catalog))
}

func seed(ctx context.Context, books *mongo.Collection) (int, error) {
	seeded := 0
	for _, b := range catalog {
		res, err := books.UpdateOne(ctx,
			bson.M{"title": b.Title},
			bson.M{
				"$set":         bson.M{"author": b.Author, "image": b.Image},
				"$setOnInsert": bson.M{"title": b.Title, "status": models.BookNotBorrowed},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return seeded, fmt.Errorf("%q: %w", b.Title, err)
		}
		if res.UpsertedCount > 0 {
			seeded++
		}
	}
	return seeded, nil
}
