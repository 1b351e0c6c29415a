package mailer

import "go.uber.org/zap"

type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier is what the booking core depends on: fire-and-forget delivery. A
// failed or dropped notification never rolls back a committed transition.
type Notifier interface {
	Dispatch(msg Message)
}

// Dispatcher queues messages to a single worker goroutine.
type Dispatcher struct {
	sender Sender
	log    *zap.Logger
	queue  chan Message
}

func NewDispatcher(sender Sender, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		log:    log,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.sender.Send(msg.To, msg.Subject, msg.Body); err != nil {
			d.log.Warn("mail send failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
		}
	}
}

// Dispatch never blocks; a full queue drops the message.
func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.log.Warn("mail queue full, dropping message", zap.String("to", msg.To))
	}
}

var _ Notifier = (*Dispatcher)(nil)
