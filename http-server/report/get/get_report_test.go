package get

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danilocardosoweb/ControleUsinagem/internal/report"
)

type MockMontar struct {
	mock.Mock
}

func (m *MockMontar) Montar(ctx context.Context, f report.Filtro) ([]*report.Row, error) {
	args := m.Called(ctx, f)
	var linhas []*report.Row
	if args.Get(0) != nil {
		linhas = args.Get(0).([]*report.Row)
	}
	return linhas, args.Error(1)
}

func TestFiltroDaQuery_Padroes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)

	f := FiltroDaQuery(req)

	assert.Equal(t, "producao", f.Tipo)
	assert.Equal(t, "detalhado", f.Modo)
	assert.Equal(t, "excel", f.Formato)
	assert.Empty(t, f.Maquina)
}

func TestGetReport_Success(t *testing.T) {
	linha := report.NewRow()
	linha.Set("Data", "10/03/2025")
	linha.Set("Quantidade", 25.0)

	mockSvc := new(MockMontar)
	mockSvc.On("Montar", mock.Anything, mock.Anything).Return([]*report.Row{linha}, nil)

	handler := GetReport(slog.Default(), mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/report?tipo=producao&maquina=1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// A ordem das colunas sobrevive à serialização
	assert.Contains(t, rr.Body.String(), `{"Data":"10/03/2025","Quantidade":25}`)

	var resp ResponseReport
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.Linhas, 1)

	chamada := mockSvc.Calls[0].Arguments.Get(1).(report.Filtro)
	assert.Equal(t, "1", chamada.Maquina)
}

func TestGetReport_TipoInvalido(t *testing.T) {
	mockSvc := new(MockMontar)

	handler := GetReport(slog.Default(), mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/report?tipo=outro", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockSvc.AssertNotCalled(t, "Montar", mock.Anything, mock.Anything)
}
