package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/danilocardosoweb/ControleUsinagem/internal/service/dashboard"
)

type MontarDashboard interface {
	Montar(ctx context.Context, agora time.Time) (*dashboard.Resumo, error)
}

// GetDashboard devolve o resumo do dia: produção, paradas, ordens e OEE.
func GetDashboard(log *slog.Logger, montar MontarDashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.dashboard.GetDashboard"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resumo, err := montar.Montar(ctx, time.Now())
		if err != nil {
			log.Error("falha ao montar dashboard", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, resumo)
	}
}
