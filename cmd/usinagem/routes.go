package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getdashboard "github.com/danilocardosoweb/ControleUsinagem/http-server/dashboard/get"
	getferramentas "github.com/danilocardosoweb/ControleUsinagem/http-server/ferramentas/get"
	upferramentas "github.com/danilocardosoweb/ControleUsinagem/http-server/ferramentas/update"
	getmaquinas "github.com/danilocardosoweb/ControleUsinagem/http-server/maquinas/get"
	getoverrides "github.com/danilocardosoweb/ControleUsinagem/http-server/overrides/get"
	saveoverrides "github.com/danilocardosoweb/ControleUsinagem/http-server/overrides/save"
	exportreport "github.com/danilocardosoweb/ControleUsinagem/http-server/report/export"
	getreport "github.com/danilocardosoweb/ControleUsinagem/http-server/report/get"
	identreport "github.com/danilocardosoweb/ControleUsinagem/http-server/report/ident"
	"github.com/danilocardosoweb/ControleUsinagem/internal/config"
	"github.com/danilocardosoweb/ControleUsinagem/internal/middleware/auth"
	"github.com/danilocardosoweb/ControleUsinagem/internal/service/dashboard"
	generate_ident "github.com/danilocardosoweb/ControleUsinagem/internal/service/generate-ident"
	"github.com/danilocardosoweb/ControleUsinagem/internal/service/relatorio"
	"github.com/danilocardosoweb/ControleUsinagem/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, relService *relatorio.RelatorioService, dashService *dashboard.DashboardService, identService *generate_ident.GenerateIdentService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"}, // Libera o frontend em desenvolvimento
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	// ip do usuário
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Relatórios filtrados (producao, paradas, desempenho, oee,
	// expedicao, produtividade, rastreabilidade)
	router.Get("/api/report", getreport.GetReport(log, relService))
	router.Get("/api/report/export", exportreport.ExportReport(log, relService))
	router.Get("/api/report/ident/{id}", identreport.GetIdent(log, identService))

	// Ajustes manuais de produtividade e marcações de conferência
	router.Get("/api/overrides", getoverrides.GetOverrides(log, storage))
	router.Post("/api/overrides", saveoverrides.SaveOverride(log, storage))
	router.Post("/api/overrides/flag", saveoverrides.SaveFlag(log, storage))

	// Resumo do dia para a tela inicial
	router.Get("/api/dashboard", getdashboard.GetDashboard(log, dashService))

	// Catálogos para os filtros
	router.Get("/api/maquinas", getmaquinas.GetMaquinas(log, storage))
	router.Get("/api/operadores", getmaquinas.GetOperadores(log, storage))
	router.Get("/api/ferramentas", getferramentas.GetFerramentas(log, storage))

	// Painel administrativo: cadastro de ferramentas
	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/ferramentas", getferramentas.GetFerramentas(log, storage))
	adminRouter.Put("/ferramentas/update", upferramentas.UpdateFerramenta(log, storage))

	router.Mount("/api/admin", adminRouter)

	// Estática do frontend, quando empacotado junto
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("Pasta do frontend não encontrada, servindo só a API", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: qualquer outro caminho → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
