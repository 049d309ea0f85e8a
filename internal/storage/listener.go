package storage

import (
	"context"
	"encoding/json"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"ads-admin-backend/internal/logger"
)

// NotifyChannel is the Postgres channel the row-change trigger publishes on.
const NotifyChannel = "tasks_channel"

// TaskListener owns the dedicated LISTEN connection, separate from the
// pooled connections the store uses per query.
type TaskListener struct {
	ln *pgdriver.Listener
}

func NewTaskListener(db *bun.DB) *TaskListener {
	return &TaskListener{ln: pgdriver.NewListener(db)}
}

// Run subscribes to NotifyChannel and forwards each payload verbatim to
// sink. It blocks until the notification channel closes or ctx is done;
// either way REST serving continues, only live updates stop.
func (l *TaskListener) Run(ctx context.Context, sink func(payload json.RawMessage)) error {
	if err := l.ln.Listen(ctx, NotifyChannel); err != nil {
		return err
	}
	logger.Info("listening for task changes", "channel", NotifyChannel)

	for notif := range l.ln.Channel() {
		if !json.Valid([]byte(notif.Payload)) {
			logger.Warn("dropping malformed notification payload", "channel", notif.Channel)
			continue
		}
		sink(json.RawMessage(notif.Payload))
	}

	logger.Warn("notification channel closed, live updates stopped")
	return nil
}

func (l *TaskListener) Close() error {
	return l.ln.Close()
}
