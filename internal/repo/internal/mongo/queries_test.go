package mongorepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nikmy/meowmatch/internal/repo/models"
)

func TestOppositeFilter(t *testing.T) {
	now := time.Date(2030, time.March, 1, 9, 0, 0, 0, time.UTC)

	type testcase struct {
		name      string
		target    models.InterviewRequest
		excluding []string
		want      bson.M
	}

	tests := [...]testcase{
		{
			name: "candidate looks for stronger interviewers",
			target: models.InterviewRequest{
				OwnerID:          "c",
				Role:             models.RoleCandidate,
				SpecializationID: "backend",
				MasteryLevel:     2,
			},
			excluding: []string{"x"},
			want: bson.M{
				models.RequestFieldRole:                models.RoleInterviewer,
				models.RequestFieldSpecializationID:    "backend",
				models.RequestFieldActive:              true,
				models.RequestFieldMasteryLevel:        bson.M{"$gte": 2},
				models.RequestFieldDesiredSessionCount: bson.M{"$gt": 0},
				models.RequestFieldExpiresAt:           bson.M{"$gt": now},
				models.RequestFieldOwnerID:             bson.M{"$nin": []string{"c", "x"}},
				models.RequestFieldBlacklist:           bson.M{"$ne": "c"},
			},
		},
		{
			name: "interviewer looks for weaker candidates",
			target: models.InterviewRequest{
				OwnerID:          "i",
				Role:             models.RoleInterviewer,
				SpecializationID: "backend",
				MasteryLevel:     3,
			},
			want: bson.M{
				models.RequestFieldRole:                models.RoleCandidate,
				models.RequestFieldSpecializationID:    "backend",
				models.RequestFieldActive:              true,
				models.RequestFieldMasteryLevel:        bson.M{"$lte": 3},
				models.RequestFieldDesiredSessionCount: bson.M{"$gt": 0},
				models.RequestFieldExpiresAt:           bson.M{"$gt": now},
				models.RequestFieldOwnerID:             bson.M{"$nin": []string{"i"}},
				models.RequestFieldBlacklist:           bson.M{"$ne": "i"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, oppositeFilter(tt.target, tt.excluding, now))
		})
	}
}

func TestSlotsFilter(t *testing.T) {
	p := time.UnixMilli(1_900_000_000_000).UTC()
	got := slotsFilter("r", []time.Time{p})
	require.Equal(t, bson.M{"_id": bson.M{"$in": []string{"r@1900000000000"}}}, got)
}

func TestCollectionNames(t *testing.T) {
	var cfg Config
	r, s, i := cfg.collectionNames()
	require.Equal(t, []string{"requests", "slots", "interviews"}, []string{r, s, i})

	cfg.Collections.Slots = "time_slots"
	_, s, _ = cfg.collectionNames()
	require.Equal(t, "time_slots", s)
}
