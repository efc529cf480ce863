package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phenrril/vitrina/internal/adapters/ui"
	"github.com/phenrril/vitrina/internal/usecase"
)

const sessionCookie = "vitrina_session"

// sessionTTL matches the cookie lifetime; entries idle longer than this are
// swept so an abandoned visitor does not hold a cart forever.
const sessionTTL = 24 * time.Hour

// sweepInterval bounds how often attach scans the registry for idle entries.
const sweepInterval = 10 * time.Minute

// session is one visitor's cart widget: the pure cart state behind its
// binder plus the rendered view. Handlers take mu for the whole request so
// each cart is mutated one event at a time, start to finish.
type session struct {
	mu     sync.Mutex
	binder *ui.Binder
	view   *pageView
}

func newSession() *session {
	view := newPageView()
	return &session{
		binder: ui.NewBinder(usecase.NewCartUC(), view),
		view:   view,
	}
}

type sessionEntry struct {
	s        *session
	lastSeen time.Time
}

// SessionStore keeps carts in memory keyed by a signed session cookie.
// Idle entries are evicted after sessionTTL; restarting the process loses
// every cart, the same way reloading the original page did.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[string]*sessionEntry
	secret    []byte
	lastSweep time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions:  map[string]*sessionEntry{},
		secret:    sessionSecret(),
		lastSweep: time.Now(),
	}
}

func sessionSecret() []byte {
	k := os.Getenv("SESSION_KEY")
	if k == "" {
		k = "dev-insecure"
	}
	return []byte(k)
}

// attach returns the request's session, minting a new id and cookie when the
// cookie is missing, tampered with, unknown, or expired. Expired entries are
// swept in passing, at most once per sweepInterval.
func (st *SessionStore) attach(w http.ResponseWriter, r *http.Request) *session {
	now := time.Now()
	id, ok := st.readCookie(r)

	st.mu.Lock()
	if now.Sub(st.lastSweep) >= sweepInterval {
		for sid, e := range st.sessions {
			if now.Sub(e.lastSeen) > sessionTTL {
				delete(st.sessions, sid)
			}
		}
		st.lastSweep = now
	}

	if ok {
		if e := st.sessions[id]; e != nil && now.Sub(e.lastSeen) <= sessionTTL {
			e.lastSeen = now
			st.mu.Unlock()
			return e.s
		}
	}

	id = uuid.NewString()
	s := newSession()
	st.sessions[id] = &sessionEntry{s: s, lastSeen: now}
	st.mu.Unlock()

	st.writeCookie(w, id)
	return s
}

func (st *SessionStore) sign(id string) string {
	h := hmac.New(sha256.New, st.secret)
	h.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

func (st *SessionStore) readCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return "", false
	}
	parts := strings.SplitN(c.Value, ".", 2)
	if len(parts) != 2 {
		return "", false
	}
	sig, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", false
	}
	id, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", false
	}
	h := hmac.New(sha256.New, st.secret)
	h.Write(id)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return "", false
	}
	return string(id), true
}

func (st *SessionStore) writeCookie(w http.ResponseWriter, id string) {
	val := st.sign(id) + "." + base64.RawURLEncoding.EncodeToString([]byte(id))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    val,
		Path:     "/",
		MaxAge:   int(sessionTTL / time.Second),
		HttpOnly: true,
	})
}
