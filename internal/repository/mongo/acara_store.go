// Package mongo stores event records in MongoDB.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"acaradashboard/internal/domain"
)

// sortFields maps accepted sort keys to document fields.
var sortFields = map[string]string{
	"tanggal": "tanggal",
	"name":    "name",
}

// Connect opens a client for uri and pings the primary.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

type acaraStore struct {
	coll *mongo.Collection
}

// NewAcaraStore returns an AcaraStore backed by the acara collection of db.
func NewAcaraStore(db *mongo.Database) domain.AcaraStore {
	return &acaraStore{coll: db.Collection(domain.AcaraCollection)}
}

// EnsureIndexes creates the owner index used by listings.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(domain.AcaraCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("userId_1"),
	})
	if err != nil {
		return fmt.Errorf("create userId index: %w", err)
	}
	return nil
}

func (s *acaraStore) Insert(ctx context.Context, doc *domain.AcaraDocument) (string, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert acara: %w", err)
	}
	return idString(res.InsertedID), nil
}

func (s *acaraStore) ListByOwner(ctx context.Context, userID string, opts domain.ListOptions) ([]domain.RawDocument, error) {
	findOpts, err := findOptions(opts)
	if err != nil {
		return nil, err
	}
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find acara: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.RawDocument
	for cursor.Next(ctx) {
		var m bson.M
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode acara: %w", err)
		}
		id := idString(m["_id"])
		delete(m, "_id")
		out = append(out, domain.RawDocument{ID: id, Fields: m})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate acara: %w", err)
	}
	return out, nil
}

func (s *acaraStore) CountByOwner(ctx context.Context, userID string) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("count acara: %w", err)
	}
	return int(n), nil
}

// findOptions applies sort and paging only when requested. Paged queries
// always end their sort with _id so pages never overlap.
func findOptions(opts domain.ListOptions) (*options.FindOptions, error) {
	fo := options.Find()
	var sort bson.D
	if opts.Sort != nil {
		field, ok := sortFields[opts.Sort.Field]
		if !ok {
			return nil, fmt.Errorf("unsupported sort field %q", opts.Sort.Field)
		}
		dir := 1
		if opts.Sort.Descending {
			dir = -1
		}
		sort = append(sort, bson.E{Key: field, Value: dir})
	}
	p := opts.Pagination
	paged := p != nil && p.Limit() > 0
	if paged {
		sort = append(sort, bson.E{Key: "_id", Value: 1})
	}
	if len(sort) > 0 {
		fo.SetSort(sort)
	}
	if paged {
		fo.SetSkip(int64(p.Offset()))
		fo.SetLimit(int64(p.Limit()))
	}
	return fo, nil
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}
