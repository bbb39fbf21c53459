package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/danilocardosoweb/ControleUsinagem/internal/constants"
	"github.com/danilocardosoweb/ControleUsinagem/internal/report"
)

type ResponseReport struct {
	Linhas []*report.Row `json:"linhas"`
	Status string        `json:"status,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type MontarRelatorio interface {
	Montar(ctx context.Context, f report.Filtro) ([]*report.Row, error)
}

// FiltroDaQuery monta o filtro a partir dos parâmetros da URL, com os
// mesmos padrões da tela (produção, modo detalhado, formato excel).
func FiltroDaQuery(r *http.Request) report.Filtro {
	q := r.URL.Query()
	f := report.Filtro{
		Tipo:       q.Get("tipo"),
		DataInicio: q.Get("data_inicio"),
		DataFim:    q.Get("data_fim"),
		Maquina:    q.Get("maquina"),
		Operador:   q.Get("operador"),
		Formato:    q.Get("formato"),
		Modo:       q.Get("modo"),
	}
	if f.Tipo == "" {
		f.Tipo = constants.RelatorioProducao
	}
	if f.Modo == "" {
		f.Modo = constants.ModoDetalhado
	}
	if f.Formato == "" {
		f.Formato = constants.FormatoExcel
	}
	return f
}

// GetReport devolve as linhas do relatório para a visualização prévia.
func GetReport(log *slog.Logger, montar MontarRelatorio) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GetReport"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		f := FiltroDaQuery(r)
		if _, ok := constants.NomesRelatorio[f.Tipo]; !ok {
			log.Warn("tipo de relatório inválido", slog.String("tipo", f.Tipo))
			http.Error(w, "Tipo de relatório inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		linhas, err := montar.Montar(ctx, f)
		if err != nil {
			log.Error("falha ao montar relatório", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseReport{Error: "Falha ao montar o relatório"})
			return
		}

		render.JSON(w, r, ResponseReport{Linhas: linhas, Status: "ok"})
	}
}
