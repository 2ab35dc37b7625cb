package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/pkg/errors"
	mng "github.com/nikmy/meowmatch/pkg/mongotools"
)

type mongoInterviews struct {
	coll *mongo.Collection
}

func (m mongoInterviews) Create(ctx context.Context, interview models.Interview) error {
	_, err := m.coll.InsertOne(ctx, interview)
	return errors.WrapFail(err, "insert interview")
}

func (m mongoInterviews) Get(ctx context.Context, id string) (*models.Interview, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find interview by id")
	}

	var parsed models.Interview
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interview")
	}

	return &parsed, nil
}

func (m mongoInterviews) Delete(ctx context.Context, id string) (bool, error) {
	r, err := m.coll.DeleteOne(ctx, mng.ID(id))
	if err != nil {
		return false, errors.WrapFail(err, "delete interview")
	}

	return r.DeletedCount == 1, nil
}

func (m mongoInterviews) FindByOwner(ctx context.Context, ownerID string) ([]models.Interview, error) {
	return m.find(ctx, ownerFilter(ownerID))
}

func (m mongoInterviews) FindStartedBefore(ctx context.Context, t time.Time) ([]models.Interview, error) {
	return m.find(ctx, bson.M{models.InterviewFieldStartTime: bson.M{"$lte": t}})
}

func (m mongoInterviews) find(ctx context.Context, filter bson.M) ([]models.Interview, error) {
	sort := bson.D{{Key: models.InterviewFieldStartTime, Value: 1}, {Key: models.InterviewFieldID, Value: 1}}
	c, err := m.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, errors.WrapFail(err, "find interviews")
	}

	found, err := mng.FilterFunc[models.Interview](ctx, c, nil)
	return found, errors.WrapFail(err, "parse interviews")
}
