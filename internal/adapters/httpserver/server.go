package httpserver

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/vitrina/internal/domain"
	"github.com/phenrril/vitrina/internal/usecase"
)

// toastDismissMS is how long a toast stays up before auto-dismissing. It is
// presentation only; nothing in the cart depends on it.
const toastDismissMS = 4000

type Server struct {
	mux      *http.ServeMux
	tmpl     *template.Template
	catalog  *usecase.CatalogUC
	sessions *SessionStore
}

func New(t *template.Template, catalog *usecase.CatalogUC, sessions *SessionStore) http.Handler {
	s := &Server{mux: http.NewServeMux(), tmpl: t, catalog: catalog, sessions: sessions}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/cart", s.handleCart)
	s.mux.HandleFunc("/cart/update", s.handleCartUpdate)
	s.mux.HandleFunc("/cart/remove", s.handleCartRemove)
	s.mux.HandleFunc("/api/cart/summary", s.apiCartSummary)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}

	products, err := s.catalog.RecentlyBought(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list catalog")
		http.Error(w, "catalog", 500)
		return
	}

	sess := s.sessions.attach(w, r)
	sess.mu.Lock()
	inCart := map[string]bool{}
	for _, p := range products {
		inCart[p.ID] = sess.binder.Cart().Exists(p.ID)
	}
	data := map[string]any{
		"Products": products,
		"InCart":   inCart,
	}
	s.addCartData(data, sess)
	sess.mu.Unlock()

	s.render(w, "home.html", data)
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sess := s.sessions.attach(w, r)
		sess.mu.Lock()
		data := map[string]any{}
		s.addCartData(data, sess)
		sess.mu.Unlock()
		s.render(w, "cart.html", data)

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "form", 400)
			return
		}
		id := r.FormValue("id")
		if id == "" {
			http.Error(w, "id", 400)
			return
		}
		p, err := s.catalog.Get(r.Context(), id)
		if err != nil {
			http.Error(w, "prod", 404)
			return
		}

		sess := s.sessions.attach(w, r)
		sess.mu.Lock()
		sess.binder.AddToCart(*p)
		count := sess.binder.Cart().TotalQty()
		total := domain.FormatUSD(sess.binder.Cart().TotalAmount())
		sess.mu.Unlock()

		if wantsJSON(r) {
			writeJSON(w, 200, map[string]any{"status": "ok", "id": id, "count": count, "total": total})
			return
		}
		http.Redirect(w, r, "/", 302)

	default:
		http.Error(w, "method", 405)
	}
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", 400)
		return
	}
	id := r.FormValue("id")
	op := r.FormValue("op")

	sess := s.sessions.attach(w, r)
	sess.mu.Lock()
	var err error
	switch op {
	case "inc":
		err = sess.binder.Increment(id)
	case "dec":
		err = sess.binder.Decrement(id)
	default:
		sess.mu.Unlock()
		http.Error(w, "op", 400)
		return
	}
	count := sess.binder.Cart().TotalQty()
	total := domain.FormatUSD(sess.binder.Cart().TotalAmount())
	sess.mu.Unlock()

	if wantsJSON(r) {
		if err != nil {
			writeJSON(w, 404, map[string]any{"status": "not_found", "id": id})
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok", "count": count, "total": total})
		return
	}
	http.Redirect(w, r, "/cart", 302)
}

// handleCartRemove is the two-step rendition of the original's blocking
// confirm dialog: the first POST renders the confirmation page, the second
// carries the user's answer.
func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", 405)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form", 400)
		return
	}
	id := r.FormValue("id")
	answer := r.FormValue("confirm")

	sess := s.sessions.attach(w, r)
	sess.mu.Lock()

	if answer == "" {
		item := sess.binder.Cart().FindByID(id)
		if item == nil {
			sess.mu.Unlock()
			http.Redirect(w, r, "/cart", 302)
			return
		}
		snapshot := *item
		sess.mu.Unlock()
		s.render(w, "confirm.html", map[string]any{"Item": snapshot})
		return
	}

	sess.view.confirmNext = answer == "yes"
	err := sess.binder.Remove(id)
	sess.view.confirmNext = false
	sess.mu.Unlock()

	if err != nil && wantsJSON(r) {
		status := 404
		if err == domain.ErrDeclined {
			status = 200
		}
		writeJSON(w, status, map[string]any{"status": err.Error(), "id": id})
		return
	}
	http.Redirect(w, r, "/cart", 302)
}

func (s *Server) apiCartSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method", 405)
		return
	}
	sess := s.sessions.attach(w, r)
	sess.mu.Lock()
	cart := sess.binder.Cart()
	resp := map[string]any{
		"count":  cart.TotalQty(),
		"amount": cart.TotalAmount(),
		"total":  domain.FormatUSD(cart.TotalAmount()),
	}
	sess.mu.Unlock()
	writeJSON(w, 200, resp)
}

// addCartData fills the template fields every page shares: dropdown rows,
// summary, toasts. Caller holds the session lock; rows are copied by value so
// the template never reads state another request may be mutating.
func (s *Server) addCartData(data map[string]any, sess *session) {
	rows := make([]cartRow, len(sess.view.rows))
	for i, r := range sess.view.rows {
		rows[i] = *r
	}
	data["Rows"] = rows
	data["Count"] = sess.view.count
	data["Total"] = sess.view.total
	data["Toasts"] = sess.view.drainToasts()
	data["ToastDismissMS"] = toastDismissMS
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		r.Header.Get("X-Requested-With") == "fetch"
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("tpl", name).Msg("render")
		http.Error(w, "tpl", 500)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
