// Package testutil wires repository tests to a real MongoDB instance.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"cardoctor/pkg/client"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	EnvTestMongoURI = "TEST_MONGO_URI"
	EnvTestDatabase = "TEST_DB_NAME"

	DefaultTestDatabase = "carDoctorTest"

	connectionTimeout = 10 * time.Second
	opTimeout         = 5 * time.Second
)

// MongoHelper holds a live connection for the duration of one test.
type MongoHelper struct {
	Mongo    *client.MongoClient
	Database string
}

// NewMongoHelper connects to the MongoDB named by TEST_MONGO_URI. When the
// variable is unset the test is skipped, so the suite stays runnable without
// a database. Disconnection is registered as a test cleanup.
func NewMongoHelper(t *testing.T) *MongoHelper {
	t.Helper()

	uri := os.Getenv(EnvTestMongoURI)
	if uri == "" {
		t.Skipf("%s not set, skipping MongoDB-backed test", EnvTestMongoURI)
	}
	dbName := os.Getenv(EnvTestDatabase)
	if dbName == "" {
		dbName = DefaultTestDatabase
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		t.Fatalf("failed to ping MongoDB: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			t.Logf("warning: failed to disconnect from MongoDB: %v", err)
		}
	})

	return &MongoHelper{
		Mongo:    &client.MongoClient{Client: mongoClient},
		Database: dbName,
	}
}

// CleanCollection removes every document so each test starts from a known
// state.
func (m *MongoHelper) CleanCollection(t *testing.T, name string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := m.collection(name).DeleteMany(ctx, bson.M{}); err != nil {
		t.Fatalf("failed to clean collection %s: %v", name, err)
	}
}

// InsertDocument seeds one raw document and returns nothing; tests read back
// through the repository under test.
func (m *MongoHelper) InsertDocument(t *testing.T, collection string, doc any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := m.collection(collection).InsertOne(ctx, doc); err != nil {
		t.Fatalf("failed to seed document into %s: %v", collection, err)
	}
}

// FindRawByID fetches a document without any projection, for asserting what
// is actually stored.
func (m *MongoHelper) FindRawByID(t *testing.T, collection string, id any) bson.M {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var doc bson.M
	if err := m.collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		t.Fatalf("failed to fetch document %v from %s: %v", id, collection, err)
	}
	return doc
}

func (m *MongoHelper) collection(name string) *mongo.Collection {
	return m.Mongo.Client.Database(m.Database).Collection(name)
}
