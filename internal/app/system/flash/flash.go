// Package flash is the mutation-feedback channel: a transient notification
// surfaced on the next rendered page after every create/update/delete,
// success or failure.
//
// Messages are carried in a signed session cookie across the POST→redirect→
// GET cycle. Handlers receive the Notifier capability explicitly rather
// than importing ambient state, so tests can hand in a recording fake.
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Kind classifies a notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Message is one transient notification.
type Message struct {
	Kind   Kind
	Title  string // e.g. "Blog Created", "Validation Error"
	Detail string // optional second line
}

// Notifier is the capability handed to any component that reports
// operation outcomes.
type Notifier interface {
	Notify(w http.ResponseWriter, r *http.Request, kind Kind, title, detail string)
}

func init() {
	gob.Register(Message{})
}

// Store keeps flash messages in a signed cookie session.
type Store struct {
	sessions *sessions.CookieStore
	name     string
	log      *zap.Logger
}

// NewStore builds a cookie-backed flash store. The key signs the cookie;
// it must be non-empty and should be strong in production.
func NewStore(key, name, domain string, secure bool, logger *zap.Logger) (*Store, error) {
	if key == "" {
		// Dev fallback so a missing key degrades loudly but functionally.
		key = string(securecookie.GenerateRandomKey(32))
		logger.Warn("flash: no session key configured, using a random per-process key")
	}
	cs := sessions.NewCookieStore([]byte(key))
	cs.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   300, // flashes are transient; stale ones expire on their own
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if name == "" {
		name = "securefuture-flash"
	}
	return &Store{sessions: cs, name: name, log: logger}, nil
}

// Notify queues a message for the next rendered page.
func (s *Store) Notify(w http.ResponseWriter, r *http.Request, kind Kind, title, detail string) {
	sess, _ := s.sessions.Get(r, s.name)
	sess.AddFlash(Message{Kind: kind, Title: title, Detail: detail})
	if err := sess.Save(r, w); err != nil {
		s.log.Error("flash: save failed", zap.Error(err))
	}
}

// SuccessF queues a success notification.
func (s *Store) SuccessF(w http.ResponseWriter, r *http.Request, title, detail string) {
	s.Notify(w, r, Success, title, detail)
}

// ErrorF queues a failure notification.
func (s *Store) ErrorF(w http.ResponseWriter, r *http.Request, title, detail string) {
	s.Notify(w, r, Error, title, detail)
}

// Pop returns and clears any queued messages. Reading flashes mutates the
// session, so the cleared state is saved back immediately.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []Message {
	sess, _ := s.sessions.Get(r, s.name)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		s.log.Error("flash: clear failed", zap.Error(err))
	}
	out := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			out = append(out, m)
		}
	}
	return out
}
