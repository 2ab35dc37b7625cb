package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/meowmatch/internal/repo/models"
	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/logger"
	"github.com/nikmy/meowmatch/pkg/txn"
)

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Collections struct {
		Requests   string `yaml:"requests"`
		Slots      string `yaml:"slots"`
		Interviews string `yaml:"interviews"`
	} `yaml:"collections"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`
}

func (c Config) collectionNames() (requests, slots, interviews string) {
	requests, slots, interviews = "requests", "slots", "interviews"
	if c.Collections.Requests != "" {
		requests = c.Collections.Requests
	}
	if c.Collections.Slots != "" {
		slots = c.Collections.Slots
	}
	if c.Collections.Interviews != "" {
		interviews = c.Collections.Interviews
	}
	return
}

var (
	requestIndexes = []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: models.RequestFieldRole, Value: 1},
				{Key: models.RequestFieldSpecializationID, Value: 1},
				{Key: models.RequestFieldActive, Value: 1},
				{Key: models.RequestFieldCreatedAt, Value: 1},
			},
			Options: options.Index().SetName("match_lookup"),
		},
		{
			Keys:    bson.D{{Key: models.RequestFieldExpiresAt, Value: 1}},
			Options: options.Index().SetName("expiry"),
		},
	}

	slotIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: models.SlotFieldRequestID, Value: 1}},
			Options: options.Index().SetName("by_request"),
		},
		{
			Keys: bson.D{
				{Key: models.SlotFieldStatus, Value: 1},
				{Key: models.SlotFieldTimePoint, Value: 1},
			},
			Options: options.Index().SetName("reaping"),
		},
	}

	interviewIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: models.InterviewFieldStartTime, Value: 1}},
			Options: options.Index().SetName("start_time"),
		},
		{
			Keys:    bson.D{{Key: models.InterviewFieldCandidateID, Value: 1}},
			Options: options.Index().SetName("candidate"),
		},
		{
			Keys:    bson.D{{Key: models.InterviewFieldInterviewerID, Value: 1}},
			Options: options.Index().SetName("interviewer"),
		},
	}
)

func NewClient(ctx context.Context, log logger.Logger, cfg Config) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	requestsName, slotsName, interviewsName := cfg.collectionNames()

	db := client.Database(cfg.Database, &options.DatabaseOptions{})
	c := &Client{
		c:          client,
		requests:   mongoRequests{db.Collection(requestsName)},
		slots:      mongoSlots{db.Collection(slotsName)},
		interviews: mongoInterviews{db.Collection(interviewsName)},
		log:        log.With("mongo_repo"),
	}
	c.txns = txn.NewManager(c, txn.CausalConsistency, txn.SnapshotIsolation)

	err = c.createIndexes(ctx)
	if err != nil {
		return nil, errors.WrapFail(err, "create indexes")
	}

	return c, nil
}

type Client struct {
	c          *mongo.Client
	requests   mongoRequests
	slots      mongoSlots
	interviews mongoInterviews
	txns       txn.Manager
	log        logger.Logger
}

func (m *Client) Requests() models.RequestsRepo {
	return m.requests
}

func (m *Client) Slots() models.SlotsRepo {
	return m.slots
}

func (m *Client) Interviews() models.InterviewsRepo {
	return m.interviews
}

func (m *Client) RunTxn(ctx context.Context, do func(ctx context.Context) error) error {
	return m.txns.Run(ctx, do)
}

func (m *Client) Close(ctx context.Context) error {
	return errors.WrapFail(m.c.Disconnect(ctx), "close mongo db connection")
}

func (m *Client) createIndexes(ctx context.Context) error {
	for coll, indexes := range map[*mongo.Collection][]mongo.IndexModel{
		m.requests.coll:   requestIndexes,
		m.slots.coll:      slotIndexes,
		m.interviews.coll: interviewIndexes,
	} {
		_, err := coll.Indexes().CreateMany(ctx, indexes)
		if err != nil {
			return errors.WrapFailf(err, "create indexes for %s", coll.Name())
		}
	}
	return nil
}
