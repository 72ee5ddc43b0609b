package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

const symptomCollection = "symptom_logs"

type MongoSymptomRepository struct {
	coll *mongo.Collection
}

func NewSymptomRepository(db *mongo.Database) *MongoSymptomRepository {
	return &MongoSymptomRepository{coll: db.Collection(symptomCollection)}
}

type mongoSymptomLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Input     string             `bson:"input"`
	Response  string             `bson:"response"`
	CreatedAt int64              `bson:"created_at"`
}

func (ml mongoSymptomLog) toDomain() *domain.SymptomLog {
	return &domain.SymptomLog{
		ID:        ml.ID.Hex(),
		UserID:    ml.UserID,
		Input:     ml.Input,
		Response:  ml.Response,
		CreatedAt: unixToTime(ml.CreatedAt),
	}
}

func (r *MongoSymptomRepository) Insert(ctx context.Context, log *domain.SymptomLog) (*domain.SymptomLog, error) {
	doc := mongoSymptomLog{
		UserID:    log.UserID,
		Input:     log.Input,
		Response:  log.Response,
		CreatedAt: log.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert symptom log: %w", err)
	}

	created := *log
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoSymptomRepository) FindByUser(ctx context.Context, userID string, from, to *time.Time) ([]domain.SymptomLog, error) {
	filter := bson.M{"user_id": userID}
	if from != nil || to != nil {
		window := bson.M{}
		if from != nil {
			window["$gte"] = from.Unix()
		}
		if to != nil {
			window["$lte"] = to.Unix()
		}
		filter["created_at"] = window
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find symptom logs: %w", err)
	}
	defer cur.Close(ctx)

	logs := make([]domain.SymptomLog, 0)
	for cur.Next(ctx) {
		var ml mongoSymptomLog
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode symptom log: %w", err)
		}
		logs = append(logs, *ml.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find symptom logs: %w", err)
	}
	return logs, nil
}

func (r *MongoSymptomRepository) CreatedSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	filter := bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": since.Unix()},
	}

	opts := options.Find().SetProjection(bson.M{"created_at": 1})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find log timestamps: %w", err)
	}
	defer cur.Close(ctx)

	timestamps := make([]time.Time, 0)
	for cur.Next(ctx) {
		var ml mongoSymptomLog
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode log timestamp: %w", err)
		}
		timestamps = append(timestamps, unixToTime(ml.CreatedAt))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find log timestamps: %w", err)
	}
	return timestamps, nil
}
