package notify

type notifier interface {
	Notifier
}

type telegramSender interface {
	sender
}

type kafkaWriter interface {
	messageWriter
}
