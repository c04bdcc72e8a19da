package document

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoConfig holds connection settings for the MongoDB-backed store.
type MongoConfig struct {
	ConnectionURL  string        `env:"MONGODB_URL,required"`
	Database       string        `env:"MONGODB_DATABASE" envDefault:"mailblocks"`
	Collection     string        `env:"MONGODB_COLLECTION" envDefault:"documents"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	RetryAttempts  int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

// ErrMongoNotReady is returned when no connection could be established
// within the configured retry budget.
var ErrMongoNotReady = errors.New("mongo is not ready")

// mongoRecord is the stored envelope. The document body is kept as its JSON
// wire form so loads pass through the same lossy decode boundary as every
// other backend.
type mongoRecord struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Body      string    `bson:"body"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStorage persists documents in a single collection keyed by id.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage wraps an already connected collection.
func NewMongoStorage(coll *mongo.Collection) *MongoStorage {
	return &MongoStorage{coll: coll}
}

// ConnectMongoStorage dials MongoDB with retries and returns a ready store.
func ConnectMongoStorage(ctx context.Context, cfg MongoConfig) (*MongoStorage, error) {
	for i := 0; i < cfg.RetryAttempts; i++ {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				coll := client.Database(cfg.Database).Collection(cfg.Collection)
				return NewMongoStorage(coll), nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrMongoNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, ErrMongoNotReady
}

func (s *MongoStorage) Save(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		return ErrInvalidDocument
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	rec := mongoRecord{
		ID:        doc.ID,
		Name:      doc.Name,
		Body:      string(body),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	_, err = s.coll.ReplaceOne(ctx,
		bson.M{"_id": doc.ID},
		rec,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoStorage) Load(ctx context.Context, id string) (Document, error) {
	var rec mongoRecord
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Document{}, ErrDocumentNotFound
	}
	if err != nil {
		return Document{}, err
	}
	return rec.toDocument()
}

func (s *MongoStorage) Delete(ctx context.Context, id string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *MongoStorage) List(ctx context.Context) ([]Document, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []Document
	for cursor.Next(ctx) {
		var rec mongoRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, err
		}
		doc, err := rec.toDocument()
		if err != nil {
			continue
		}
		out = append(out, doc)
	}
	return out, cursor.Err()
}

func (r mongoRecord) toDocument() (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(r.Body), &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
