package export

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	reportget "github.com/danilocardosoweb/ControleUsinagem/http-server/report/get"
	"github.com/danilocardosoweb/ControleUsinagem/internal/constants"
	"github.com/danilocardosoweb/ControleUsinagem/internal/report"
)

// AvisoPDF é devolvido no cabeçalho X-Aviso quando o usuário pede PDF:
// o formato não é implementado e o arquivo sai como CSV.
const AvisoPDF = "Formato PDF nao implementado; arquivo exportado como CSV (Excel)."

type ExportarRelatorio interface {
	Exportar(ctx context.Context, f report.Filtro) ([]byte, string, error)
}

type ResponseError struct {
	Error string `json:"error"`
}

// ExportReport serializa o relatório filtrado e devolve o CSV como anexo.
func ExportReport(log *slog.Logger, exportar ExportarRelatorio) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.ExportReport"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		f := reportget.FiltroDaQuery(r)
		if _, ok := constants.NomesRelatorio[f.Tipo]; !ok {
			log.Warn("tipo de relatório inválido", slog.String("tipo", f.Tipo))
			http.Error(w, "Tipo de relatório inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		blob, nome, err := exportar.Exportar(ctx, f)
		if err != nil {
			if errors.Is(err, report.ErrSemDados) {
				log.Info("exportação sem dados", slog.String("tipo", f.Tipo))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, ResponseError{Error: "Sem dados para exportar."})
				return
			}
			log.Error("falha ao exportar relatório", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if f.Formato == constants.FormatoPDF {
			w.Header().Set("X-Aviso", AvisoPDF)
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+nome)
		w.Write(blob)
	}
}
