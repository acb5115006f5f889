package httpapi

import (
	"expvar"
	"net/http"

	"github.com/pawlig/pawlig/internal/auth"
	httpopenapi "github.com/pawlig/pawlig/internal/http/openapi"
)

// NewRouter registers HTTP routes and returns the handler with
// middleware. Admin- and organization-gated prefixes also pass through
// Protect so refusals are decided before the handler runs; the
// handlers re-evaluate the same guard for per-method requirements.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/pets", app.petsHandler)
	mux.HandleFunc("/api/pets/", app.petHandler)
	mux.HandleFunc("/api/products", app.productsHandler)
	mux.HandleFunc("/api/products/", app.productHandler)
	mux.HandleFunc("/api/orders", app.ordersHandler)
	mux.HandleFunc("/api/favorites", app.favoritesHandler)
	mux.HandleFunc("/api/favorites/toggle", app.favoriteToggleHandler)
	mux.HandleFunc("/api/adoptions", app.adoptionsHandler)
	mux.HandleFunc("/api/adoptions/", Protect(auth.Requirement{
		Roles:           []auth.Role{auth.RoleShelter},
		RequireVerified: true,
	}, app.adoptionHandler))
	mux.HandleFunc("/api/announcements", app.announcementsHandler)
	mux.HandleFunc("/api/announcements/", Protect(auth.Requirement{
		Roles: []auth.Role{auth.RoleAdmin},
	}, app.announcementHandler))
	mux.HandleFunc("/api/uploads/sign", app.uploadSignHandler)
	mux.HandleFunc("/healthz", app.healthHandler)
	mux.HandleFunc("/debug/metrics", app.metricsHandler)
	mux.Handle("/debug/vars", expvar.Handler())
	mux.HandleFunc("/openapi.yaml", app.openapiHandler)
	mux.HandleFunc("/docs", app.docsHandler)
	return WithRequestID(WithLogging(WithSession(app.Codec, mux)))
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>PawLig API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
