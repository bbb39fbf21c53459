package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

type FerramentaUpserter interface {
	UpsertFerramentaCfg(ctx context.Context, cfg storage.FerramentaCfg) error
}

type ResponseStatus struct {
	Status string `json:"status"`
}

// UpdateFerramenta cria ou atualiza o cadastro de uma ferramenta.
// Rota administrativa, protegida por autenticação básica.
func UpdateFerramenta(log *slog.Logger, upserter FerramentaUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.ferramentas.UpdateFerramenta"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var cfg storage.FerramentaCfg
		if err := render.DecodeJSON(r.Body, &cfg); err != nil {
			if errors.Is(err, io.EOF) {
				log.Error("corpo da requisição vazio")
				http.Error(w, "Empty request", http.StatusBadRequest)
				return
			}
			log.Error("falha ao decodificar requisição", slog.String("error", err.Error()))
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if cfg.Ferramenta == "" {
			http.Error(w, "Código da ferramenta ausente", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := upserter.UpsertFerramentaCfg(ctx, cfg); err != nil {
			log.Error("falha ao gravar ferramenta", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("ferramenta gravada", slog.String("ferramenta", cfg.Ferramenta))
		render.JSON(w, r, ResponseStatus{Status: "OK"})
	}
}
