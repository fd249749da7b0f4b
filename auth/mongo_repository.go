package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/user/nutritrack-go/apperror"
)

// userDocument is the BSON shape of a user in the `users` collection.
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Name         string             `bson:"name"`
	Age          int                `bson:"age"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d *userDocument) toUser() *User {
	return &User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Name:         d.Name,
		Age:          d.Age,
		CreatedAt:    d.CreatedAt,
	}
}

// MongoUserRepository stores users in a MongoDB collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a MongoUserRepository on the `users` collection.
func NewMongoUserRepository(database *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: database.Collection("users")}
}

// EnsureIndexes creates the unique email index the repository relies on.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_key"),
	})
	return err
}

func (r *MongoUserRepository) Create(ctx context.Context, user *User) error {
	doc := userDocument{
		ID:           primitive.NewObjectID(),
		Email:        strings.ToLower(user.Email),
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Age:          user.Age,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.ErrDuplicateRecord
		}
		return err
	}
	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	return nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.ErrRecordNotFound
		}
		return nil, err
	}
	return doc.toUser(), nil
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.ErrRecordNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// sessionDocument is the BSON shape of a session in the `sessions` collection.
type sessionDocument struct {
	ID        string    `bson:"_id"`
	Token     string    `bson:"token"`
	UserID    string    `bson:"userId"`
	ExpiresAt time.Time `bson:"expires"`
	CreatedAt time.Time `bson:"createdAt"`
}

// MongoSessionRepository stores sessions in the `sessions` collection of the same database.
type MongoSessionRepository struct {
	coll *mongo.Collection
}

// NewMongoSessionRepository creates a MongoSessionRepository.
func NewMongoSessionRepository(database *mongo.Database) *MongoSessionRepository {
	return &MongoSessionRepository{coll: database.Collection("sessions")}
}

func (r *MongoSessionRepository) Create(ctx context.Context, s *Session) error {
	_, err := r.coll.InsertOne(ctx, sessionDocument{
		ID:        s.ID,
		Token:     s.Token,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return apperror.ErrDuplicateRecord
	}
	return err
}

func (r *MongoSessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expires": bson.M{"$lte": now}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
