package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"thozhahub/internal/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "thozhahub"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	users := client.Database(dbName).Collection("users")

	demo := []model.User{
		{
			ID:    uuid.New().String(),
			Name:  "Asha Raman",
			Email: "asha@example.com",
			Bio:   "Frontend developer learning systems programming",
		},
		{
			ID:    uuid.New().String(),
			Name:  "Vikram Iyer",
			Email: "vikram@example.com",
			Bio:   "Self-taught, prefers building over reading",
		},
	}

	for _, u := range demo {
		u.CreatedAt = time.Now()
		u.UpdatedAt = time.Now()

		existing := users.FindOne(ctx, bson.M{"email": u.Email})
		if existing.Err() == nil {
			fmt.Printf("skip %s (already seeded)\n", u.Email)
			continue
		}

		if _, err := users.InsertOne(ctx, u); err != nil {
			log.Fatalf("Failed to insert %s: %v", u.Email, err)
		}
		fmt.Printf("seeded %s\n", u.Email)
	}

	log.Println("Seed complete")
}
