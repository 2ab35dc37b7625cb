package reaper

import (
	"github.com/nikmy/meowmatch/internal/notify"
)

type notifier interface {
	notify.Notifier
}

type interviewExpirer interface {
	expirer
}

type reportSweeper interface {
	sweeper
}
