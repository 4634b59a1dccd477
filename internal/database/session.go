package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type sessionDoc struct {
	SessionID string    `bson:"session_id"`
	Snapshot  []byte    `bson:"snapshot"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// SaveSnapshot upserts a session's serialized snapshot by session_id.
func (m *MongoDB) SaveSnapshot(ctx context.Context, sessionID string, data []byte) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(sessionsCollection)

	filter := bson.D{{Key: "session_id", Value: sessionID}}
	update := bson.D{{Key: "$set", Value: sessionDoc{
		SessionID: sessionID,
		Snapshot:  data,
		UpdatedAt: time.Now(),
	}}}
	opts := options.Update().SetUpsert(true)

	_, err = collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// LoadSnapshot retrieves a session snapshot. A missing document is not an
// error; the caller starts a fresh session.
func (m *MongoDB) LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(sessionsCollection)

	filter := bson.D{{Key: "session_id", Value: sessionID}}

	var doc sessionDoc
	err = collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return doc.Snapshot, nil
}

// DeleteSnapshot removes a session snapshot.
func (m *MongoDB) DeleteSnapshot(ctx context.Context, sessionID string) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(sessionsCollection)

	filter := bson.D{{Key: "session_id", Value: sessionID}}

	_, err = collection.DeleteOne(ctx, filter)
	return err
}

// CleanupSessions drops sessions untouched for the configured expiry window.
// Returns the number of removed documents.
func (m *MongoDB) CleanupSessions(ctx context.Context) (int64, error) {
	if m.expiredDays <= 0 {
		return 0, nil
	}

	connection, err := m.connect()
	if err != nil {
		return 0, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(sessionsCollection)

	cutoff := time.Now().AddDate(0, 0, -m.expiredDays)
	filter := bson.D{{Key: "updated_at", Value: bson.D{{Key: "$lt", Value: cutoff}}}}

	result, err := collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
