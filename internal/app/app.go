package app

import (
	"html/template"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/phenrril/vitrina/internal/adapters/httpserver"
	"github.com/phenrril/vitrina/internal/adapters/repo/memory"
	"github.com/phenrril/vitrina/internal/domain"
	"github.com/phenrril/vitrina/internal/usecase"
	"github.com/phenrril/vitrina/internal/views"
)

type App struct {
	Tmpl      *template.Template
	CatalogUC *usecase.CatalogUC
	Sessions  *httpserver.SessionStore
}

func NewApp() (*App, error) {
	catalogRepo := memory.NewSeededCatalogRepo()

	funcMap := template.FuncMap{
		"usd": domain.FormatUSD,
		"usdp": func(d *decimal.Decimal) string {
			if d == nil {
				return ""
			}
			return domain.FormatUSD(*d)
		},
		"na": func(s string) string {
			if s == "" {
				return "n/a"
			}
			return s
		},
	}

	tmpl, err := template.New("layout").Funcs(funcMap).ParseFS(views.FS, "*.html")
	if err != nil {
		return nil, err
	}

	return &App{
		Tmpl:      tmpl,
		CatalogUC: &usecase.CatalogUC{Products: catalogRepo},
		Sessions:  httpserver.NewSessionStore(),
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Tmpl, a.CatalogUC, a.Sessions)
}
