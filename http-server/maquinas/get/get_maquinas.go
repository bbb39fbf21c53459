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

type CatalogoProvider interface {
	GetMaquinas(ctx context.Context) ([]*storage.Maquina, error)
	GetOperadores(ctx context.Context) ([]string, error)
}

type ResponseMaquinas struct {
	Maquinas   []*storage.Maquina `json:"maquinas"`
	Operadores []string           `json:"operadores"`
}

// GetMaquinas devolve o catálogo de máquinas e a lista de operadores
// conhecidos, usados para preencher os filtros de relatório.
func GetMaquinas(log *slog.Logger, provider CatalogoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.maquinas.GetMaquinas"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		maquinas, err := provider.GetMaquinas(ctx)
		if err != nil {
			log.Error("falha ao carregar máquinas", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		operadores, err := provider.GetOperadores(ctx)
		if err != nil {
			log.Error("falha ao carregar operadores", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseMaquinas{Maquinas: maquinas, Operadores: operadores})
	}
}
