// File: database/repository/content/store.go
package contentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by a DocumentStore when a key has never been written.
var ErrNotFound = errors.New("document not found")

// Collection keys. Each key maps to exactly one JSON document holding the
// whole collection; writes replace it wholesale (last writer wins).
const (
	KeyServices    = "services"
	KeyPosts       = "posts"
	KeyFAQs        = "faqs"
	KeySiteConfig  = "site_config"
	KeyLeads       = "leads"
	KeyCredentials = "admin_credentials"
)

// DocumentStore reads and writes raw JSON documents by key. The Mongo
// implementation is used in production; tests substitute an in-memory one.
type DocumentStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

type storedDocument struct {
	Key       string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoDocumentStore keeps each collection as a single document in one
// Mongo collection, keyed by collection name.
type MongoDocumentStore struct {
	coll *mongo.Collection
}

// NewMongoDocumentStore creates a DocumentStore backed by the given database.
func NewMongoDocumentStore(db *mongo.Database) *MongoDocumentStore {
	return &MongoDocumentStore{coll: db.Collection("content")}
}

// Read returns the raw JSON stored under key, or ErrNotFound.
func (s *MongoDocumentStore) Read(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc storedDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document %q: %w", key, err)
	}
	return []byte(doc.Data), nil
}

// Write replaces the document stored under key.
func (s *MongoDocumentStore) Write(ctx context.Context, key string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := storedDocument{Key: key, Data: string(data), UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return nil
}
