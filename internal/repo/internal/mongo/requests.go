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

type mongoRequests struct {
	coll *mongo.Collection
}

func (m mongoRequests) Create(ctx context.Context, req models.InterviewRequest) error {
	_, err := m.coll.InsertOne(ctx, req)
	return errors.WrapFail(err, "insert request")
}

func (m mongoRequests) Get(ctx context.Context, id string) (*models.InterviewRequest, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find request by id")
	}

	var parsed models.InterviewRequest
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode request")
	}

	return &parsed, nil
}

func (m mongoRequests) Save(ctx context.Context, req models.InterviewRequest) error {
	_, err := m.coll.ReplaceOne(ctx, mng.ID(req.ID), req, options.Replace().SetUpsert(true))
	return errors.WrapFail(err, "replace request")
}

func (m mongoRequests) FindCandidatesFor(
	ctx context.Context,
	interviewer models.InterviewRequest,
	excludingOwners []string,
	now time.Time,
) ([]models.InterviewRequest, error) {
	return m.find(ctx, oppositeFilter(interviewer, excludingOwners, now))
}

func (m mongoRequests) FindInterviewersFor(
	ctx context.Context,
	candidate models.InterviewRequest,
	excludingOwners []string,
	now time.Time,
) ([]models.InterviewRequest, error) {
	return m.find(ctx, oppositeFilter(candidate, excludingOwners, now))
}

func (m mongoRequests) FindExpired(ctx context.Context, now time.Time) ([]models.InterviewRequest, error) {
	return m.find(ctx, expiredFilter(now))
}

func (m mongoRequests) find(ctx context.Context, filter bson.M) ([]models.InterviewRequest, error) {
	c, err := m.coll.Find(ctx, filter, options.Find().SetSort(creationOrder))
	if err != nil {
		return nil, errors.WrapFail(err, "find requests")
	}

	found, err := mng.FilterFunc[models.InterviewRequest](ctx, c, nil)
	return found, errors.WrapFail(err, "parse requests")
}
