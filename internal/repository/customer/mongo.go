package customer

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"customer-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CollectionName is the mongo collection holding customer documents.
const CollectionName = "customers"

type mongoRepo struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewMongo returns a Repository backed by the customers collection of db.
func NewMongo(db *mongo.Database, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &mongoRepo{coll: db.Collection(CollectionName), logger: logger}
}

func (r *mongoRepo) FindAll(ctx context.Context) ([]domain.Customer, error) {
	return r.find(ctx, bson.D{})
}

func (r *mongoRepo) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (r *mongoRepo) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *mongoRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "email", Value: email}}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mongoRepo) FindByNameContainingIgnoreCase(ctx context.Context, name string) ([]domain.Customer, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}
	return r.find(ctx, bson.D{{Key: "name", Value: pattern}})
}

func (r *mongoRepo) Save(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if !c.HasID() {
		res, err := r.coll.InsertOne(ctx, c)
		if err != nil {
			r.logger.Error("customer repo: insert failed", zap.Error(err))
			return nil, err
		}
		oid, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
		}
		c.ID = oid
		return &c, nil
	}

	_, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: c.ID}}, c, options.Replace().SetUpsert(true))
	if err != nil {
		r.logger.Error("customer repo: replace failed", zap.String("id", c.StringID()), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *mongoRepo) SaveAll(ctx context.Context, cs []domain.Customer) ([]domain.Customer, error) {
	if len(cs) == 0 {
		return []domain.Customer{}, nil
	}
	docs := make([]interface{}, 0, len(cs))
	out := make([]domain.Customer, len(cs))
	for i, c := range cs {
		c.ClearID()
		out[i] = c
		docs = append(docs, c)
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		r.logger.Error("customer repo: insert many failed", zap.Int("count", len(cs)), zap.Error(err))
		return nil, err
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(out) {
			out[i].ID = oid
		}
	}
	return out, nil
}

func (r *mongoRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	_, err = r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	return err
}

func (r *mongoRepo) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.D{})
	return err
}

func (r *mongoRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *mongoRepo) find(ctx context.Context, filter bson.D) ([]domain.Customer, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	result := []domain.Customer{}
	if err := cur.All(ctx, &result); err != nil {
		r.logger.Error("customer repo: decode failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (r *mongoRepo) findOne(ctx context.Context, filter bson.D) (*domain.Customer, error) {
	var c domain.Customer
	err := r.coll.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("customer repo: find one failed", zap.Error(err))
		return nil, err
	}
	return &c, nil
}
