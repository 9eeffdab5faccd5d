package app

import (
	"database/sql"

	"github.com/luach/luach/internal/notify"
	"github.com/luach/luach/pkg/event"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *notify.Bus

	EventRepo    event.EventRepo
	EventService event.EventService
	EventHandler *event.EventHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = notify.NewBus()
	deps.Bus.Subscribe(notify.EventCreated, func(n notify.Notification) error {
		if e, ok := n.Data.(event.Event); ok {
			log.Infof("event created: id=%d title=%q start=%s end=%s", e.ID, e.Title, e.Start, e.End)
		}
		return nil
	})
	deps.Bus.Subscribe(notify.EventDeleted, func(n notify.Notification) error {
		if id, ok := n.Data.(int64); ok {
			log.Infof("event deleted: id=%d", id)
		}
		return nil
	})

	deps.EventRepo = event.NewEventRepo(db)
	deps.EventService = event.NewEventService(deps.EventRepo, deps.Bus)
	deps.EventHandler = event.NewEventHandler(deps.EventService)

	return deps
}
