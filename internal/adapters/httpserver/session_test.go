package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attachOnce(t *testing.T, st *SessionStore, cookies []*http.Cookie) (*session, []*http.Cookie) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	s := st.attach(rec, req)
	require.NotNil(t, s)
	out := rec.Result().Cookies()
	if len(out) == 0 {
		out = cookies
	}
	return s, out
}

func TestSessionReuseKeepsOneEntry(t *testing.T) {
	st := NewSessionStore()

	first, cookies := attachOnce(t, st, nil)
	second, _ := attachOnce(t, st, cookies)

	assert.Same(t, first, second)
	assert.Len(t, st.sessions, 1)
}

func TestExpiredSessionIsReplacedAndSwept(t *testing.T) {
	st := NewSessionStore()

	first, cookies := attachOnce(t, st, nil)
	require.Len(t, st.sessions, 1)

	st.mu.Lock()
	for _, e := range st.sessions {
		e.lastSeen = time.Now().Add(-2 * sessionTTL)
	}
	st.lastSweep = time.Time{}
	st.mu.Unlock()

	second, _ := attachOnce(t, st, cookies)

	assert.NotSame(t, first, second, "stale cookie must not resurrect the old cart")
	assert.Len(t, st.sessions, 1, "expired entry should be swept, not accumulate")
}

func TestIdleSessionsAreSwept(t *testing.T) {
	st := NewSessionStore()

	for i := 0; i < 5; i++ {
		attachOnce(t, st, nil)
	}
	require.Len(t, st.sessions, 5)

	st.mu.Lock()
	n := 0
	for _, e := range st.sessions {
		if n < 3 {
			e.lastSeen = time.Now().Add(-2 * sessionTTL)
		}
		n++
	}
	st.lastSweep = time.Time{}
	st.mu.Unlock()

	attachOnce(t, st, nil)

	assert.Len(t, st.sessions, 3, "3 idle entries swept, 2 live plus the new one remain")
}
