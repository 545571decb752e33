package handlers

import (
	"encoding/gob"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

// Flash is a one-time message shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

const (
	flashSessionKey = "_flashes"
	pendingFlashKey = "flashes.pending"
)

func init() {
	gob.Register([]Flash{})
}

// FlashStore keeps flash messages in the session until they are rendered.
type FlashStore struct {
	sessions *session.Store
	logger   *logrus.Logger
}

func NewFlashStore(sessions *session.Store, logger *logrus.Logger) *FlashStore {
	return &FlashStore{
		sessions: sessions,
		logger:   logger,
	}
}

// Add stores a message for the next request, usually the target of a redirect.
func (f *FlashStore) Add(c *fiber.Ctx, category, message string) {
	sess, err := f.sessions.Get(c)
	if err != nil {
		f.logger.WithError(err).Warn("Failed to load session for flash")
		return
	}

	flashes, _ := sess.Get(flashSessionKey).([]Flash)
	sess.Set(flashSessionKey, append(flashes, Flash{Category: category, Message: message}))
	if err := sess.Save(); err != nil {
		f.logger.WithError(err).Warn("Failed to save flash")
	}
}

// Now queues a message for the page rendered by the current request.
func (f *FlashStore) Now(c *fiber.Ctx, category, message string) {
	pending, _ := c.Locals(pendingFlashKey).([]Flash)
	c.Locals(pendingFlashKey, append(pending, Flash{Category: category, Message: message}))
}

// Pop returns and clears the stored messages followed by the queued ones.
func (f *FlashStore) Pop(c *fiber.Ctx) []Flash {
	pending, _ := c.Locals(pendingFlashKey).([]Flash)
	c.Locals(pendingFlashKey, nil)

	sess, err := f.sessions.Get(c)
	if err != nil {
		f.logger.WithError(err).Warn("Failed to load session for flash")
		return pending
	}

	stored, _ := sess.Get(flashSessionKey).([]Flash)
	if len(stored) == 0 {
		return pending
	}

	sess.Delete(flashSessionKey)
	if err := sess.Save(); err != nil {
		f.logger.WithError(err).Warn("Failed to clear flashes")
	}
	return append(stored, pending...)
}
