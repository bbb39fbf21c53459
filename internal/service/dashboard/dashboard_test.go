package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

type MockDashboardStorage struct {
	mock.Mock
}

func (m *MockDashboardStorage) GetApontamentos(ctx context.Context) ([]*storage.Apontamento, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Apontamento), args.Error(1)
}

func (m *MockDashboardStorage) GetParadas(ctx context.Context) ([]*storage.Parada, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Parada), args.Error(1)
}

func (m *MockDashboardStorage) GetPedidos(ctx context.Context) ([]*storage.Pedido, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Pedido), args.Error(1)
}

func (m *MockDashboardStorage) GetMaquinas(ctx context.Context) ([]*storage.Maquina, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Maquina), args.Error(1)
}

func TestMontar_ResumoDoDia(t *testing.T) {
	agora := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	hoje := agora.Add(-6 * time.Hour) // 08:00 de hoje
	ontem := agora.Add(-24 * time.Hour)
	aps := []*storage.Apontamento{
		{Inicio: &hoje, Maquina: "1", Operador: "Ana", OrdemTrabalho: "100/1", Quantidade: 80},
		{Inicio: &ontem, Maquina: "1", Operador: "Ana", Quantidade: 999}, // fora do dia
	}

	inicioParada := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	fimParada := inicioParada.Add(30 * time.Minute)
	paradas := []*storage.Parada{
		{Maquina: "1", Inicio: &inicioParada, Fim: &fimParada},
	}

	pedidos := []*storage.Pedido{
		{ID: "p1", PedidoSeq: "100/1", Produto: "TR0805AB6000", QtdPedido: 200, Separado: 0},
		{ID: "p2", PedidoSeq: "200/1", QtdPedido: 50, Separado: 50}, // concluído
	}

	mockStorage := new(MockDashboardStorage)
	mockStorage.On("GetApontamentos", mock.Anything).Return(aps, nil)
	mockStorage.On("GetParadas", mock.Anything).Return(paradas, nil)
	mockStorage.On("GetPedidos", mock.Anything).Return(pedidos, nil)
	mockStorage.On("GetMaquinas", mock.Anything).Return([]*storage.Maquina{{ID: "1", Nome: "Extrusora 01"}}, nil)

	service := NewDashboardService(mockStorage)

	resumo, err := service.Montar(context.Background(), agora)

	assert.NoError(t, err)
	assert.Equal(t, 80.0, resumo.ProducaoDiaria)
	assert.Equal(t, "00:30", resumo.TempoParada)
	assert.Equal(t, 1, resumo.OrdensConcluidas)
	assert.Equal(t, 1, resumo.OrdensPendentes)

	// Só o pedido com produção e ainda aberto aparece em execução
	assert.Len(t, resumo.OrdensExecucao, 1)
	ordem := resumo.OrdensExecucao[0]
	assert.Equal(t, "100/1", ordem.Codigo)
	assert.Equal(t, "Extrusora 01", ordem.Maquina)
	assert.Equal(t, "Ana", ordem.Operador)
	assert.Equal(t, 40, ordem.Progresso) // 80 de 200
}

func TestTempoParadaDoDia_AbertaContaAteAgora(t *testing.T) {
	agora := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	inicio := agora.Add(-90 * time.Minute)

	// Parada sem fim: em andamento até "agora"
	tempo := tempoParadaDoDia([]*storage.Parada{{Maquina: "1", Inicio: &inicio}}, agora)

	assert.Equal(t, "01:30", tempo)
}

func TestTempoParadaDoDia_RecortaNoDia(t *testing.T) {
	agora := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	// Começou ontem às 23:00 e terminou hoje às 01:00: só 1h conta
	inicio := time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC)
	fim := time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)

	tempo := tempoParadaDoDia([]*storage.Parada{{Maquina: "1", Inicio: &inicio, Fim: &fim}}, agora)

	assert.Equal(t, "01:00", tempo)
}

func TestTempoParadaDoDia_SemParadas(t *testing.T) {
	agora := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "-", tempoParadaDoDia(nil, agora))
}

func TestOrdensEmExecucao_MaquinaNaoResolvidaNaoVaza(t *testing.T) {
	inicio := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	aps := []*storage.Apontamento{
		{Inicio: &inicio, Maquina: "8c9a4e2f-77aa-4f10-9b3c-0d5c2d8e1a22", OrdemTrabalho: "100/1", Quantidade: 10},
	}
	pedidos := []*storage.Pedido{
		{ID: "p1", PedidoSeq: "100/1", QtdPedido: 100},
	}

	ordens := ordensEmExecucao(aps, pedidos, nil)

	// Um uuid de máquina sem cadastro vira traço, nunca texto cru na tela
	assert.Len(t, ordens, 1)
	assert.Equal(t, "-", ordens[0].Maquina)
}

func TestOrdensEmExecucao_LimiteDeCinco(t *testing.T) {
	inicio := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	var aps []*storage.Apontamento
	var pedidos []*storage.Pedido
	for _, seq := range []string{"1/1", "2/1", "3/1", "4/1", "5/1", "6/1", "7/1"} {
		aps = append(aps, &storage.Apontamento{Inicio: &inicio, OrdemTrabalho: seq, Quantidade: 1})
		pedidos = append(pedidos, &storage.Pedido{ID: seq, PedidoSeq: seq, QtdPedido: 100})
	}

	ordens := ordensEmExecucao(aps, pedidos, nil)

	assert.Len(t, ordens, 5)
}
