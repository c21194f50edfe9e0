package server

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/llucior2/control-de-contratos/internal/config"
	"github.com/llucior2/control-de-contratos/internal/handlers"
	"github.com/llucior2/control-de-contratos/internal/httpx"
	"github.com/llucior2/control-de-contratos/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(conn *gorm.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()
	st := store.New(conn)

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – detailed errors stay out of the body
		if err := st.Ping(); err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter

	rs := handlers.NewRazonSocialHandler(st)
	mux.HandleFunc("GET /api/razonesSociales", rs.List)
	mux.HandleFunc("POST /api/razonesSociales", rs.Create)
	mux.HandleFunc("PUT /api/razonesSociales/{id}", rs.Update)
	mux.HandleFunc("DELETE /api/razonesSociales/{id}", rs.Delete)

	cl := handlers.NewClienteHandler(st)
	mux.HandleFunc("GET /api/clientes", cl.List)
	mux.HandleFunc("POST /api/clientes", cl.Create)
	mux.HandleFunc("PUT /api/clientes/{id}", cl.Update)
	mux.HandleFunc("DELETE /api/clientes/{id}", cl.Delete)
	mux.HandleFunc("GET /api/razones-sociales-por-cliente", cl.RazonesPorCliente)

	ct := handlers.NewContratoHandler(st)
	mux.HandleFunc("GET /api/contratos", ct.List)
	mux.HandleFunc("POST /api/contratos", ct.Create)
	mux.HandleFunc("PUT /api/contratos/{id}", ct.Update)
	mux.HandleFunc("DELETE /api/contratos/{id}", ct.Delete)

	oc := handlers.NewOrdenDeCambioHandler(st)
	mux.HandleFunc("GET /api/ordenesDeCambio", oc.List)
	mux.HandleFunc("POST /api/ordenesDeCambio", oc.Create)
	mux.HandleFunc("PUT /api/ordenesDeCambio/{id}", oc.Update)
	mux.HandleFunc("DELETE /api/ordenesDeCambio/{id}", oc.Delete)

	fa := handlers.NewFacturaHandler(st)
	mux.HandleFunc("GET /api/facturas", fa.List)
	mux.HandleFunc("POST /api/facturas", fa.Create)
	mux.HandleFunc("PUT /api/facturas/{id}", fa.Update)
	mux.HandleFunc("DELETE /api/facturas/{id}", fa.Delete)

	pg := handlers.NewPagoHandler(st)
	mux.HandleFunc("GET /api/pagos", pg.List)
	mux.HandleFunc("POST /api/pagos", pg.Create)
	mux.HandleFunc("PUT /api/pagos/{id}", pg.Update)
	mux.HandleFunc("DELETE /api/pagos/{id}", pg.Delete)

	cc := handlers.NewCatalogoConceptoHandler(st)
	mux.HandleFunc("GET /api/catalogoConceptos", cc.List)
	mux.HandleFunc("POST /api/catalogoConceptos", cc.Create)
	mux.HandleFunc("PUT /api/catalogoConceptos/{id}", cc.Update)
	mux.HandleFunc("DELETE /api/catalogoConceptos/{id}", cc.Delete)

	pc := handlers.NewProcesoConstructivoHandler(st)
	mux.HandleFunc("GET /api/procesosConstructivos", pc.List)
	mux.HandleFunc("POST /api/procesosConstructivos", pc.Create)
	mux.HandleFunc("PUT /api/procesosConstructivos/{id}", pc.Update)
	mux.HandleFunc("DELETE /api/procesosConstructivos/{id}", pc.Delete)

	bk := handlers.NewBulkHandler(st)
	mux.HandleFunc("POST /api/bulk/clientes", bk.Clientes)
	mux.HandleFunc("POST /api/bulk/contratos", bk.Contratos)
	mux.HandleFunc("POST /api/bulk/facturas", bk.Facturas)
	mux.HandleFunc("POST /api/bulk-upload/pagos", bk.Pagos)
	mux.HandleFunc("POST /api/bulk-upload/catalogo-conceptos", bk.Conceptos)
	mux.HandleFunc("POST /api/bulk-upload/procesos-constructivos", bk.Procesos)

	rp := handlers.NewReporteHandler()
	mux.HandleFunc("POST /api/reporte/excel", rp.Excel)

	// Auto-update artifacts for the packaged desktop client.
	mux.Handle("GET /updates/", http.StripPrefix("/updates/", http.FileServer(http.Dir(cfg.UpdatesDir))))

	// Everything else falls through to the bundled frontend.
	mux.Handle("/", spaHandler(cfg.StaticDir))

	return withRecover(withLogging(mux))
}

// spaHandler serves files from dir and falls back to index.html for
// client-side routes. Anything under /api/ that reaches here — unknown
// paths and method-mismatched requests alike, since the catch-all pattern
// absorbs both — answers 404.
func spaHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			httpx.Error(w, http.StatusNotFound, "Recurso no encontrado.")
			return
		}
		if r.URL.Path == "/" {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		if _, err := os.Stat(filepath.Join(dir, filepath.Clean(r.URL.Path))); err == nil {
			fs.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.Error(w, http.StatusInternalServerError, "Error interno del servidor.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
