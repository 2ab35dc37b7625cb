package txn

import "context"

type Session interface {
	// BindContext attaches the session to ctx, so that storage
	// operations called with the result run inside the session.
	BindContext(ctx context.Context) context.Context
	Close(ctx context.Context)
	Txn(c ConsistencyModel, i IsolationLevel) Txn
}

type Txn interface {
	Start(ctx context.Context) error
	Abort(ctx context.Context) error
	Commit(ctx context.Context) error
}

type ConsistencyModel int

const (
	// CausalConsistency means that
	// all logically depending operations
	// are sequential consistent
	CausalConsistency ConsistencyModel = iota

	// SequentialConsistency means that
	// any concurrent operations execution
	// result is equivalent to some
	// sequential execution of those
	// operations
	SequentialConsistency

	// Linearizable means that
	// operations order is consistent
	// with real time order
	Linearizable
)

type IsolationLevel int

const (
	ReadUncommitted IsolationLevel = iota
	ReadCommitted
	SnapshotIsolation
	Serializable
)
