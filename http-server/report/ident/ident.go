package ident

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

type GerarIdentificacao interface {
	GenerateIdent(ctx context.Context, id string) ([]byte, string, error)
}

// GetIdent gera a ficha de identificação (xlsx) de um apontamento.
func GetIdent(log *slog.Logger, gerar GerarIdentificacao) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GetIdent"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")
		if id == "" {
			http.Error(w, "Identificador do apontamento ausente", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		blob, nome, err := gerar.GenerateIdent(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNaoEncontrado) {
				log.Info("apontamento não encontrado", slog.String("id", id))
				http.Error(w, "Apontamento não encontrado", http.StatusNotFound)
				return
			}
			log.Error("falha ao gerar ficha de identificação", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+nome)
		w.Write(blob)
	}
}
