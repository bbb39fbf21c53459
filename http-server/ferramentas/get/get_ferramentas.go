package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

type FerramentaProvider interface {
	GetFerramentasCfg(ctx context.Context) ([]*storage.FerramentaCfg, error)
}

// GetFerramentas devolve o cadastro de ferramentas: peso por peça e
// capacidades de embalagem usadas no relatório de expedição.
func GetFerramentas(log *slog.Logger, provider FerramentaProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.ferramentas.GetFerramentas"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		ferramentas, err := provider.GetFerramentasCfg(ctx)
		if err != nil {
			log.Error("falha ao carregar ferramentas", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ferramentas)
	}
}
