package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/nikmy/meowmatch/pkg/errors"
	"github.com/nikmy/meowmatch/pkg/txn"
)

func (m *Client) NewSession() (txn.Session, error) {
	s, err := m.c.StartSession(options.Session())
	if err != nil {
		return nil, err
	}

	return &session{s: s}, nil
}

type session struct {
	s mongo.Session
}

func (s *session) BindContext(ctx context.Context) context.Context {
	return mongo.NewSessionContext(ctx, s.s)
}

func (s *session) Txn(c txn.ConsistencyModel, i txn.IsolationLevel) txn.Txn {
	if c > txn.CausalConsistency {
		panic("unsupported consistency model")
	}

	w, r := writeconcern.Majority(), readconcern.Local()
	switch {
	case i >= txn.SnapshotIsolation:
		r = readconcern.Snapshot()
	case i == txn.ReadCommitted:
		r = readconcern.Majority()
	}

	return &mongoTxn{
		readCon:  r,
		writeCon: w,
	}
}

func (s *session) Close(ctx context.Context) {
	s.s.EndSession(ctx)
}

type mongoTxn struct {
	readCon  *readconcern.ReadConcern
	writeCon *writeconcern.WriteConcern
}

func (m *mongoTxn) Start(ctx context.Context) error {
	sess := mongo.SessionFromContext(ctx)
	if sess == nil {
		return errors.Fail("get session from context")
	}

	return sess.StartTransaction(
		options.Transaction().
			SetReadConcern(m.readCon).
			SetWriteConcern(m.writeCon),
	)
}

func (m *mongoTxn) Abort(ctx context.Context) error {
	return mongo.SessionFromContext(ctx).AbortTransaction(ctx)
}

func (m *mongoTxn) Commit(ctx context.Context) error {
	return mongo.SessionFromContext(ctx).CommitTransaction(ctx)
}
