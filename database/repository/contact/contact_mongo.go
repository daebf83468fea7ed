package contactRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hourlyride/database"
	"hourlyride/models"
)

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a ContactRepository backed by the contact_submissions collection.
func NewMongoContactRepo() ContactRepository {
	return &mongoContactRepo{coll: database.Collection("contact_submissions")}
}

func (r *mongoContactRepo) Create(ctx context.Context, submission *models.ContactSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, submission)
	return err
}

func (r *mongoContactRepo) List(ctx context.Context) ([]models.ContactSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var submissions []models.ContactSubmission
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
