package mongorepo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/nikmy/meowmatch/internal/repo/models"
	mng "github.com/nikmy/meowmatch/pkg/mongotools"
)

// oppositeFilter selects eligible requests of the opposite role which
// may be matched with target. Mastery gate: interviewer >= candidate.
func oppositeFilter(target models.InterviewRequest, excludingOwners []string, now time.Time) bson.M {
	mastery := bson.M{"$lte": target.MasteryLevel}
	if target.Role == models.RoleCandidate {
		mastery = bson.M{"$gte": target.MasteryLevel}
	}

	excluding := append([]string{target.OwnerID}, excludingOwners...)

	return mng.And(
		mng.Field(models.RequestFieldRole, target.Role.Opposite()),
		mng.Field(models.RequestFieldSpecializationID, target.SpecializationID),
		mng.Field(models.RequestFieldActive, true),
		mng.Field(models.RequestFieldMasteryLevel, mastery),
		mng.Field(models.RequestFieldDesiredSessionCount, bson.M{"$gt": 0}),
		mng.Field(models.RequestFieldExpiresAt, bson.M{"$gt": now}),
		mng.NotIn(models.RequestFieldOwnerID, excluding),
		mng.Field(models.RequestFieldBlacklist, bson.M{"$ne": target.OwnerID}),
	)
}

func expiredFilter(now time.Time) bson.M {
	return bson.M{
		models.RequestFieldActive:    true,
		models.RequestFieldExpiresAt: bson.M{"$lte": now},
	}
}

func pastAvailableFilter(now time.Time) bson.M {
	return bson.M{
		models.SlotFieldStatus:    models.SlotAvailable,
		models.SlotFieldTimePoint: bson.M{"$lte": now},
	}
}

func slotsFilter(requestID string, points []time.Time) bson.M {
	keys := make([]string, 0, len(points))
	for _, p := range points {
		keys = append(keys, models.SlotKey(requestID, p))
	}
	return bson.M{models.SlotFieldID: bson.M{"$in": keys}}
}

func ownerFilter(ownerID string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{models.InterviewFieldCandidateID: ownerID},
		bson.M{models.InterviewFieldInterviewerID: ownerID},
	}}
}

var creationOrder = bson.D{
	{Key: models.RequestFieldCreatedAt, Value: 1},
	{Key: models.RequestFieldID, Value: 1},
}
