package tracking

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/user/nutritrack-go/apperror"
)

// recordDocument is the BSON shape of a record in the `trackings` collection.
// userId and foodId are ObjectIDs referencing the users and foods collections.
type recordDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	FoodID    primitive.ObjectID `bson:"foodId"`
	EatenDate string             `bson:"eatenDate"`
	Quantity  float64            `bson:"quantity"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// MongoRepository stores records in the `trackings` collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a MongoRepository.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection("trackings")}
}

// EnsureIndexes creates the (userId, eatenDate) lookup index.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "eatenDate", Value: 1}},
		Options: options.Index().SetName("trackings_user_date_idx"),
	})
	return err
}

func (r *MongoRepository) Create(ctx context.Context, record *Record) error {
	userID, err := primitive.ObjectIDFromHex(record.UserID)
	if err != nil {
		return apperror.ErrRecordNotFound
	}
	foodID, err := primitive.ObjectIDFromHex(record.FoodID)
	if err != nil {
		return apperror.ErrRecordNotFound
	}

	doc := recordDocument{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		FoodID:    foodID,
		EatenDate: record.EatenDate,
		Quantity:  record.Quantity,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	record.ID = doc.ID.Hex()
	record.CreatedAt = doc.CreatedAt
	return nil
}

func (r *MongoRepository) ListByUserAndDate(ctx context.Context, userID, dateKey string) ([]Record, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []Record{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"userId": uid, "eatenDate": dateKey}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := []Record{}
	for cur.Next(ctx) {
		var doc recordDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		records = append(records, Record{
			ID:        doc.ID.Hex(),
			UserID:    doc.UserID.Hex(),
			FoodID:    doc.FoodID.Hex(),
			EatenDate: doc.EatenDate,
			Quantity:  doc.Quantity,
			CreatedAt: doc.CreatedAt,
		})
	}
	return records, cur.Err()
}
