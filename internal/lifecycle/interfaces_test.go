package lifecycle

import (
	"github.com/nikmy/meowmatch/internal/notify"
	"github.com/nikmy/meowmatch/internal/rooms"
)

type provisioner interface {
	rooms.Provisioner
}

type notifier interface {
	notify.Notifier
}
