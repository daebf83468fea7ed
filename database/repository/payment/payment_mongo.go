package paymentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hourlyride/database"
	"hourlyride/models"
)

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo returns a PaymentRepository backed by the payment_transactions collection.
func NewMongoPaymentRepo() PaymentRepository {
	return &mongoPaymentRepo{coll: database.Collection("payment_transactions")}
}

func (r *mongoPaymentRepo) Create(ctx context.Context, txn *models.PaymentTransaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, txn)
	return err
}

func (r *mongoPaymentRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var txn models.PaymentTransaction
	if err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *mongoPaymentRepo) MarkPaid(ctx context.Context, sessionID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"session_id": sessionID, "payment_status": bson.M{"$ne": "paid"}},
		bson.M{"$set": bson.M{
			"payment_status": "paid",
			"updated_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		// Either unknown session or already paid; distinguish the two.
		count, err := r.coll.CountDocuments(ctx, bson.M{"session_id": sessionID})
		if err != nil {
			return false, err
		}
		if count == 0 {
			return false, mongo.ErrNoDocuments
		}
		return false, nil
	}
	return true, nil
}
