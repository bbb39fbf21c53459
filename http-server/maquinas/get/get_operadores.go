package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// GetOperadores devolve os nomes distintos de operador vistos nos
// apontamentos, fonte do seletor de filtro da tela.
func GetOperadores(log *slog.Logger, provider CatalogoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.maquinas.GetOperadores"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		operadores, err := provider.GetOperadores(ctx)
		if err != nil {
			log.Error("falha ao carregar operadores", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if operadores == nil {
			operadores = []string{}
		}
		render.JSON(w, r, operadores)
	}
}
