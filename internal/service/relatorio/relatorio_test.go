package relatorio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danilocardosoweb/ControleUsinagem/internal/constants"
	"github.com/danilocardosoweb/ControleUsinagem/internal/report"
	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

type MockRelatorioStorage struct {
	mock.Mock
}

func (m *MockRelatorioStorage) GetApontamentos(ctx context.Context) ([]*storage.Apontamento, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	aps, ok := args.Get(0).([]*storage.Apontamento)
	if !ok {
		return nil, fmt.Errorf("expected []*storage.Apontamento, got %T", args.Get(0))
	}
	return aps, args.Error(1)
}

func (m *MockRelatorioStorage) GetParadas(ctx context.Context) ([]*storage.Parada, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Parada), args.Error(1)
}

func (m *MockRelatorioStorage) GetLotes(ctx context.Context) ([]*storage.Lote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Lote), args.Error(1)
}

func (m *MockRelatorioStorage) GetFerramentasCfg(ctx context.Context) ([]*storage.FerramentaCfg, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.FerramentaCfg), args.Error(1)
}

func (m *MockRelatorioStorage) GetMaquinas(ctx context.Context) ([]*storage.Maquina, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Maquina), args.Error(1)
}

func (m *MockRelatorioStorage) GetOverrides(ctx context.Context) (map[string]map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]string), args.Error(1)
}

func apontamentoDeTeste(dia string, maquina string, qtd float64) *storage.Apontamento {
	inicio, _ := time.Parse("2006-01-02 15:04", dia)
	fim := inicio.Add(time.Hour)
	return &storage.Apontamento{
		Inicio:     &inicio,
		Fim:        &fim,
		Maquina:    maquina,
		Operador:   "Ana",
		Produto:    "TR0805AB6000",
		Quantidade: qtd,
	}
}

func TestMontar_Producao(t *testing.T) {
	// 1. Mock do armazenamento com dois apontamentos, um fora do período
	mockStorage := new(MockRelatorioStorage)
	mockStorage.On("GetApontamentos", mock.Anything).Return([]*storage.Apontamento{
		apontamentoDeTeste("2025-03-10 08:00", "1", 100),
		apontamentoDeTeste("2025-02-01 08:00", "1", 50),
	}, nil)
	mockStorage.On("GetMaquinas", mock.Anything).Return([]*storage.Maquina{
		{ID: "1", Nome: "Extrusora 01"},
	}, nil)

	service := NewRelatorioService(mockStorage, slog.Default())

	// 2. Monta a listagem de produção do período
	linhas, err := service.Montar(context.Background(), report.Filtro{
		Tipo:       constants.RelatorioProducao,
		DataInicio: "2025-03-01",
		DataFim:    "2025-03-31",
	})

	assert.NoError(t, err)
	assert.Len(t, linhas, 1)
	assert.Equal(t, "Extrusora 01", linhas[0].GetString("Maquina"))
	assert.Equal(t, "100", linhas[0].GetString("Quantidade"))

	// Coleções não usadas pela produção não são buscadas
	mockStorage.AssertNotCalled(t, "GetParadas", mock.Anything)
	mockStorage.AssertNotCalled(t, "GetLotes", mock.Anything)
	mockStorage.AssertNotCalled(t, "GetOverrides", mock.Anything)
}

func TestMontar_TipoDesconhecido(t *testing.T) {
	mockStorage := new(MockRelatorioStorage)
	service := NewRelatorioService(mockStorage, slog.Default())

	linhas, err := service.Montar(context.Background(), report.Filtro{Tipo: "inexistente"})

	assert.Nil(t, linhas)
	assert.Error(t, err)
	mockStorage.AssertNotCalled(t, "GetApontamentos", mock.Anything)
}

func TestMontar_RastreabilidadeCompacta(t *testing.T) {
	a := apontamentoDeTeste("2025-03-10 08:00", "1", 100)
	a.ID = "ap-1"
	a.Amarrados = []storage.Amarrado{
		{Codigo: "A1", Lote: "L1"},
		{Codigo: "A2", Lote: "L2"},
	}

	mockStorage := new(MockRelatorioStorage)
	mockStorage.On("GetApontamentos", mock.Anything).Return([]*storage.Apontamento{a}, nil)
	mockStorage.On("GetMaquinas", mock.Anything).Return([]*storage.Maquina{}, nil)
	mockStorage.On("GetLotes", mock.Anything).Return([]*storage.Lote{}, nil)

	service := NewRelatorioService(mockStorage, slog.Default())

	detalhado, err := service.Montar(context.Background(), report.Filtro{
		Tipo: constants.RelatorioRastreabilidade,
		Modo: constants.ModoDetalhado,
	})
	assert.NoError(t, err)
	assert.Len(t, detalhado, 2)

	compacto, err := service.Montar(context.Background(), report.Filtro{
		Tipo: constants.RelatorioRastreabilidade,
		Modo: constants.ModoCompacto,
	})
	assert.NoError(t, err)
	assert.Len(t, compacto, 1)
	assert.Equal(t, "A1, A2", compacto[0].GetString("Amarrado_Codigo"))
}

func TestMontar_OverridesCorrompidosDegradam(t *testing.T) {
	mockStorage := new(MockRelatorioStorage)
	mockStorage.On("GetApontamentos", mock.Anything).Return([]*storage.Apontamento{
		apontamentoDeTeste("2025-03-10 08:00", "1", 60),
	}, nil)
	mockStorage.On("GetMaquinas", mock.Anything).Return([]*storage.Maquina{}, nil)
	mockStorage.On("GetOverrides", mock.Anything).Return(nil, errors.New("tabela corrompida"))

	service := NewRelatorioService(mockStorage, slog.Default())

	// A falha no armazenamento de ajustes não derruba o relatório
	linhas, err := service.Montar(context.Background(), report.Filtro{Tipo: constants.RelatorioProdutividade})

	assert.NoError(t, err)
	assert.Len(t, linhas, 1)
	assert.Equal(t, "", linhas[0].GetString("Ajuste_pcs_h"))
}

func TestMontar_FalhaNoArmazenamento(t *testing.T) {
	mockStorage := new(MockRelatorioStorage)
	mockStorage.On("GetApontamentos", mock.Anything).Return(nil, errors.New("conexao perdida"))
	mockStorage.On("GetMaquinas", mock.Anything).Return([]*storage.Maquina{}, nil)

	service := NewRelatorioService(mockStorage, slog.Default())

	linhas, err := service.Montar(context.Background(), report.Filtro{Tipo: constants.RelatorioProducao})

	assert.Nil(t, linhas)
	assert.ErrorContains(t, err, "apontamentos")
}

func TestExportar(t *testing.T) {
	mockStorage := new(MockRelatorioStorage)
	mockStorage.On("GetApontamentos", mock.Anything).Return([]*storage.Apontamento{
		apontamentoDeTeste("2025-03-10 08:00", "1", 100),
	}, nil)
	mockStorage.On("GetMaquinas", mock.Anything).Return([]*storage.Maquina{}, nil)

	service := NewRelatorioService(mockStorage, slog.Default())

	blob, nome, err := service.Exportar(context.Background(), report.Filtro{Tipo: constants.RelatorioProducao})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(blob), "\uFEFF"))
	assert.True(t, strings.HasPrefix(nome, "Produção_por_Período_"))
	assert.True(t, strings.HasSuffix(nome, ".csv"))
}

func TestExportar_SemDados(t *testing.T) {
	mockStorage := new(MockRelatorioStorage)
	mockStorage.On("GetApontamentos", mock.Anything).Return([]*storage.Apontamento{}, nil)
	mockStorage.On("GetMaquinas", mock.Anything).Return([]*storage.Maquina{}, nil)

	service := NewRelatorioService(mockStorage, slog.Default())

	blob, nome, err := service.Exportar(context.Background(), report.Filtro{Tipo: constants.RelatorioProducao})

	assert.Nil(t, blob)
	assert.Empty(t, nome)
	assert.ErrorIs(t, err, report.ErrSemDados)
}
