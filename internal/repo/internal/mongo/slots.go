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

type slotDoc struct {
	ID              string `bson:"_id"`
	models.TimeSlot `bson:",inline"`
}

type mongoSlots struct {
	coll *mongo.Collection
}

func (m mongoSlots) Get(ctx context.Context, requestID string, timePoint time.Time) (*models.TimeSlot, error) {
	r := m.coll.FindOne(ctx, mng.ID(models.SlotKey(requestID, timePoint)))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find slot")
	}

	var parsed slotDoc
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode slot")
	}

	return &parsed.TimeSlot, nil
}

func (m mongoSlots) SaveTimeSlots(ctx context.Context, slots []models.TimeSlot) error {
	if len(slots) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(slots))
	for _, s := range slots {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(mng.ID(s.Key())).
			SetReplacement(slotDoc{ID: s.Key(), TimeSlot: s}).
			SetUpsert(true),
		)
	}

	_, err := m.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	return errors.WrapFail(err, "bulk upsert slots")
}

func (m mongoSlots) DeleteTimeSlots(ctx context.Context, requestID string, timePoints []time.Time) error {
	if len(timePoints) == 0 {
		return nil
	}

	_, err := m.coll.DeleteMany(ctx, slotsFilter(requestID, timePoints))
	return errors.WrapFail(err, "delete slots")
}

func (m mongoSlots) FindByRequest(ctx context.Context, requestID string) ([]models.TimeSlot, error) {
	return m.find(ctx, bson.M{models.SlotFieldRequestID: requestID})
}

func (m mongoSlots) FindPastAvailable(ctx context.Context, now time.Time) ([]models.TimeSlot, error) {
	return m.find(ctx, pastAvailableFilter(now))
}

func (m mongoSlots) find(ctx context.Context, filter bson.M) ([]models.TimeSlot, error) {
	sort := bson.D{{Key: models.SlotFieldTimePoint, Value: 1}, {Key: models.SlotFieldRequestID, Value: 1}}
	c, err := m.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, errors.WrapFail(err, "find slots")
	}

	docs, err := mng.FilterFunc[slotDoc](ctx, c, nil)
	if err != nil {
		return nil, errors.WrapFail(err, "parse slots")
	}

	found := make([]models.TimeSlot, 0, len(docs))
	for _, d := range docs {
		found = append(found, d.TimeSlot)
	}
	return found, nil
}
