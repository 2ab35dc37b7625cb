package txn

import (
	"context"
	"time"

	"github.com/nikmy/meowmatch/pkg/errors"
)

type sessionMaker interface {
	NewSession() (Session, error)
}

func NewManager(m sessionMaker, c ConsistencyModel, i IsolationLevel) Manager {
	return Manager{maker: m, consistency: c, isolation: i}
}

type Manager struct {
	maker       sessionMaker
	consistency ConsistencyModel
	isolation   IsolationLevel
}

type sessionKey struct{}

// InTxn reports whether ctx belongs to a running transaction.
func InTxn(ctx context.Context) bool {
	_, ok := ctx.Value(sessionKey{}).(Session)
	return ok
}

// Run executes do inside a transaction. Nested calls join the outer
// transaction. The transaction is committed only if do returns nil.
func (m Manager) Run(ctx context.Context, do func(ctx context.Context) error) error {
	if InTxn(ctx) {
		return do(ctx)
	}

	session, err := m.maker.NewSession()
	if err != nil {
		return errors.WrapFail(err, "start session")
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		session.Close(closeCtx)
	}()

	ctx = context.WithValue(ctx, sessionKey{}, session)
	ctx = session.BindContext(ctx)

	tx := session.Txn(m.consistency, m.isolation)
	err = tx.Start(ctx)
	if err != nil {
		return errors.WrapFail(err, "start txn")
	}

	err = do(ctx)
	if err != nil {
		abortErr := tx.Abort(context.WithoutCancel(ctx))
		if abortErr != nil {
			return errors.Join(err, errors.WrapFail(abortErr, "abort txn"))
		}
		return err
	}

	return errors.WrapFail(tx.Commit(ctx), "commit txn")
}
