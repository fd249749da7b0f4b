package foods

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/user/nutritrack-go/apperror"
)

// foodDocument is the BSON shape of a food in the `foods` collection.
type foodDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Calories      float64            `bson:"calories"`
	Carbohydrates float64            `bson:"carbohydrates"`
	Fat           float64            `bson:"fat"`
	Protein       float64            `bson:"protein"`
	Fiber         float64            `bson:"fiber"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

func (d *foodDocument) toFood() Food {
	return Food{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Calories:      d.Calories,
		Carbohydrates: d.Carbohydrates,
		Fat:           d.Fat,
		Protein:       d.Protein,
		Fiber:         d.Fiber,
		CreatedAt:     d.CreatedAt,
	}
}

// caseInsensitive is the collation used by the unique name index and by exact
// name lookups, so both agree on what "the same name" means.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// MongoRepository stores the catalog in the `foods` collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a MongoRepository.
func NewMongoRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: database.Collection("foods")}
}

// EnsureIndexes creates the case-insensitive unique name index.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetName("foods_name_key").
			SetCollation(caseInsensitive),
	})
	return err
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M) ([]Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}}).SetCollation(caseInsensitive)
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	foods := []Food{}
	for cur.Next(ctx) {
		var doc foodDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		foods = append(foods, doc.toFood())
	}
	return foods, cur.Err()
}

func (r *MongoRepository) List(ctx context.Context) ([]Food, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRepository) SearchByName(ctx context.Context, fragment string) ([]Food, error) {
	return r.find(ctx, bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(fragment), Options: "i"}})
}

func (r *MongoRepository) GetByName(ctx context.Context, name string) (*Food, error) {
	var doc foodDocument
	err := r.coll.FindOne(ctx, bson.M{"name": name}, options.FindOne().SetCollation(caseInsensitive)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.ErrRecordNotFound
		}
		return nil, err
	}
	f := doc.toFood()
	return &f, nil
}

func (r *MongoRepository) GetByIDs(ctx context.Context, ids []string) (map[string]Food, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	out := make(map[string]Food, len(oids))
	if len(oids) == 0 {
		return out, nil
	}

	foods, err := r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	for _, f := range foods {
		out[f.ID] = f
	}
	return out, nil
}

func (r *MongoRepository) Create(ctx context.Context, food *Food) error {
	doc := foodDocument{
		ID:            primitive.NewObjectID(),
		Name:          food.Name,
		Calories:      food.Calories,
		Carbohydrates: food.Carbohydrates,
		Fat:           food.Fat,
		Protein:       food.Protein,
		Fiber:         food.Fiber,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.ErrDuplicateRecord
		}
		return err
	}
	food.ID = doc.ID.Hex()
	food.CreatedAt = doc.CreatedAt
	return nil
}
