package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type OverrideProvider interface {
	GetOverrides(ctx context.Context) (map[string]map[string]string, error)
	GetFlags(ctx context.Context) (map[string]bool, error)
}

type ResponseOverrides struct {
	Overrides map[string]map[string]string `json:"overrides"`
	Flags     map[string]bool              `json:"flags"`
}

// GetOverrides devolve todos os ajustes manuais de produtividade e as
// marcações de linha dos relatórios. Armazenamento ausente/corrompido
// degrada para mapas vazios: a tela carrega sem os ajustes, nunca quebra.
func GetOverrides(log *slog.Logger, provider OverrideProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.overrides.GetOverrides"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		overrides, err := provider.GetOverrides(ctx)
		if err != nil || overrides == nil {
			if err != nil {
				log.Warn("falha ao carregar ajustes, seguindo sem eles",
					slog.String("error", err.Error()))
			}
			overrides = map[string]map[string]string{}
		}

		flags, err := provider.GetFlags(ctx)
		if err != nil || flags == nil {
			if err != nil {
				log.Warn("falha ao carregar marcações, seguindo sem elas",
					slog.String("error", err.Error()))
			}
			flags = map[string]bool{}
		}

		render.JSON(w, r, ResponseOverrides{Overrides: overrides, Flags: flags})
	}
}
