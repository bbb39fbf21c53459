package save

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type OverrideSaver interface {
	MergeOverride(ctx context.Context, chave, campo, valor string) error
	SetFlag(ctx context.Context, rowID string, marcado bool) error
}

type RequestOverride struct {
	Chave string `json:"chave"`
	Campo string `json:"campo"`
	Valor string `json:"valor"`
}

type RequestFlag struct {
	RowID   string `json:"row_id"`
	Marcado bool   `json:"marcado"`
}

type ResponseStatus struct {
	Status string `json:"status"`
}

// SaveOverride grava um ajuste manual de produtividade. A gravação é de
// mesclagem: só o campo enviado muda, os demais ajustes da chave ficam.
func SaveOverride(log *slog.Logger, saver OverrideSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.overrides.SaveOverride"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req RequestOverride
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Error("corpo da requisição vazio")
				http.Error(w, "Empty request", http.StatusBadRequest)
				return
			}
			log.Error("falha ao decodificar requisição", slog.String("error", err.Error()))
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if req.Chave == "" || (req.Campo != "h" && req.Campo != "d") {
			http.Error(w, "Ajuste inválido: informe chave e campo 'h' ou 'd'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.MergeOverride(ctx, req.Chave, req.Campo, req.Valor); err != nil {
			log.Error("falha ao gravar ajuste", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("ajuste gravado", slog.String("chave", req.Chave), slog.String("campo", req.Campo))
		render.JSON(w, r, ResponseStatus{Status: "OK"})
	}
}

// SaveFlag grava a marcação de conferência de uma linha de relatório.
func SaveFlag(log *slog.Logger, saver OverrideSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.overrides.SaveFlag"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req RequestFlag
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Error("corpo da requisição vazio")
				http.Error(w, "Empty request", http.StatusBadRequest)
				return
			}
			log.Error("falha ao decodificar requisição", slog.String("error", err.Error()))
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if req.RowID == "" {
			http.Error(w, "Identificador da linha ausente", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := saver.SetFlag(ctx, req.RowID, req.Marcado); err != nil {
			log.Error("falha ao gravar marcação", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ResponseStatus{Status: "OK"})
	}
}
