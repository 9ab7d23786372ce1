package notify

import (
	"log"
	"sync"
	"time"

	"tasktracker/internal/mailer"
	"tasktracker/internal/model"
)

// Notifier dispatches best-effort email notifications. Implementations must
// never block the caller on delivery and never surface delivery failures.
type Notifier interface {
	OTPIssued(email, code string, validFor time.Duration)
	Welcome(user *model.User)
	ProjectCreated(user *model.User, project *model.Project)
	ProjectUpdated(user *model.User, project *model.Project)
	ProjectDeleted(user *model.User, title string)
	ProjectCompleted(user *model.User, project *model.Project)
}

type message struct {
	to      string
	subject string
	body    string
}

// Dispatcher queues messages on a buffered channel and delivers them from a
// single background worker. The lifecycle operations hand off here after
// their database writes commit; a full queue drops the message with a log
// line rather than blocking the request.
type Dispatcher struct {
	sender mailer.Sender
	queue  chan message
	done   chan struct{}
	once   sync.Once
}

// Ensure Dispatcher implements Notifier
var _ Notifier = (*Dispatcher)(nil)

const queueSize = 64

// NewDispatcher starts a dispatcher backed by the given sender.
func NewDispatcher(sender mailer.Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan message, queueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.queue {
		if err := d.sender.Send(msg.to, msg.subject, msg.body); err != nil {
			log.Printf("notify: failed to send %q to %s: %v", msg.subject, msg.to, err)
		}
	}
}

// Close stops accepting messages and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}

func (d *Dispatcher) enqueue(msg message) {
	select {
	case d.queue <- msg:
	default:
		log.Printf("notify: queue full, dropping %q to %s", msg.subject, msg.to)
	}
}

// OTPIssued sends the one-time code. This is the only place the plaintext
// code leaves the process.
func (d *Dispatcher) OTPIssued(email, code string, validFor time.Duration) {
	d.enqueue(message{
		to:      email,
		subject: "Verify Your Email - Task Tracker",
		body:    otpBody(code, validFor),
	})
}

// Welcome greets a freshly registered user.
func (d *Dispatcher) Welcome(user *model.User) {
	d.enqueue(message{
		to:      user.Email,
		subject: "Welcome to Task Tracker!",
		body:    welcomeBody(user.Name),
	})
}

// ProjectCreated confirms a new project.
func (d *Dispatcher) ProjectCreated(user *model.User, project *model.Project) {
	d.enqueue(message{
		to:      user.Email,
		subject: "Project Created Successfully!",
		body:    projectCreatedBody(user.Name, project.Title),
	})
}

// ProjectUpdated confirms an edit.
func (d *Dispatcher) ProjectUpdated(user *model.User, project *model.Project) {
	d.enqueue(message{
		to:      user.Email,
		subject: "Project Updated",
		body:    projectUpdatedBody(user.Name, project.Title),
	})
}

// ProjectDeleted confirms a deletion, using the pre-deletion title.
func (d *Dispatcher) ProjectDeleted(user *model.User, title string) {
	d.enqueue(message{
		to:      user.Email,
		subject: "Project Deleted",
		body:    projectDeletedBody(user.Name, title),
	})
}

// ProjectCompleted congratulates on completion.
func (d *Dispatcher) ProjectCompleted(user *model.User, project *model.Project) {
	d.enqueue(message{
		to:      user.Email,
		subject: "Project Completed",
		body:    projectCompletedBody(user.Name, project.Title),
	})
}
