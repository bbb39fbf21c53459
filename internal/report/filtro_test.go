package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/danilocardosoweb/ControleUsinagem/internal/storage"
)

func apontamentoEm(dia string, maquina, operador string) *storage.Apontamento {
	t, _ := time.Parse("2006-01-02 15:04", dia)
	return &storage.Apontamento{Inicio: &t, Maquina: maquina, Operador: operador}
}

func TestFiltrarApontamentos_PeriodoInclusivo(t *testing.T) {
	aps := []*storage.Apontamento{
		apontamentoEm("2025-03-09 23:59", "M1", "Ana"),
		apontamentoEm("2025-03-10 00:00", "M1", "Ana"),
		apontamentoEm("2025-03-11 12:00", "M1", "Ana"),
		apontamentoEm("2025-03-12 00:01", "M1", "Ana"),
	}

	out := FiltrarApontamentos(aps, Filtro{DataInicio: "2025-03-10", DataFim: "2025-03-11"})

	// Os dois extremos do período entram
	assert.Len(t, out, 2)
	assert.Equal(t, "2025-03-10", out[0].Inicio.Format("2006-01-02"))
	assert.Equal(t, "2025-03-11", out[1].Inicio.Format("2006-01-02"))
}

func TestFiltrarApontamentos_SemDataSoPassaSemLimite(t *testing.T) {
	semData := &storage.Apontamento{Maquina: "M1"}

	assert.Len(t, FiltrarApontamentos([]*storage.Apontamento{semData}, Filtro{}), 1)
	assert.Empty(t, FiltrarApontamentos([]*storage.Apontamento{semData}, Filtro{DataInicio: "2025-03-10"}))
	assert.Empty(t, FiltrarApontamentos([]*storage.Apontamento{semData}, Filtro{DataFim: "2025-03-10"}))
}

func TestFiltrarApontamentos_MaquinaEOperador(t *testing.T) {
	aps := []*storage.Apontamento{
		apontamentoEm("2025-03-10 08:00", "M1", "Ana"),
		apontamentoEm("2025-03-10 09:00", "M2", "Ana"),
		apontamentoEm("2025-03-10 10:00", "M1", "Bruno"),
		nil,
	}

	assert.Len(t, FiltrarApontamentos(aps, Filtro{Maquina: "M1"}), 2)
	assert.Len(t, FiltrarApontamentos(aps, Filtro{Operador: "Ana"}), 2)
	assert.Len(t, FiltrarApontamentos(aps, Filtro{Maquina: "M1", Operador: "Ana"}), 1)
}

func TestNormalizarParadas_ResolveAliases(t *testing.T) {
	inicio := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	fim := inicio.Add(30 * time.Minute)

	paradas := []*storage.Parada{
		{
			Maquina:            "M1",
			InicioTimestamp:    &inicio,
			FimTimestamp:       &fim,
			MotivoParadaLegado: "Troca de ferramenta",
			TipoParadaLegado:   storage.ParadaSetup,
		},
		nil,
	}

	out := NormalizarParadas(paradas)

	assert.Len(t, out, 1)
	assert.Equal(t, &inicio, out[0].Inicio)
	assert.Equal(t, &fim, out[0].Fim)
	assert.Equal(t, "Troca de ferramenta", out[0].Motivo)
	assert.Equal(t, storage.ParadaSetup, out[0].Tipo)
}

func TestNormalizarParadas_CanonicoVemPrimeiro(t *testing.T) {
	canonico := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	legado := canonico.Add(time.Hour)

	out := NormalizarParadas([]*storage.Parada{{
		Inicio:             &canonico,
		InicioTimestamp:    &legado,
		MotivoParada:       "novo",
		MotivoParadaLegado: "antigo",
	}})

	assert.Equal(t, &canonico, out[0].Inicio)
	assert.Equal(t, "novo", out[0].Motivo)
}

func TestFiltrarParadas_IgnoraOperador(t *testing.T) {
	inicio := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	paradas := []ParadaNorm{{Maquina: "M1", Inicio: &inicio}}

	// Paradas não têm operador; o critério não pode zerar o resultado
	out := FiltrarParadas(paradas, Filtro{Operador: "Ana"})
	assert.Len(t, out, 1)

	out = FiltrarParadas(paradas, Filtro{Maquina: "M2"})
	assert.Empty(t, out)
}

func TestMapaMaquinas(t *testing.T) {
	maq := MapaMaquinas([]*storage.Maquina{
		{ID: "1", Nome: "Extrusora 01"},
		{ID: "2", Codigo: "EXT-02"},
		{ID: "3"},
		nil,
	})

	assert.Equal(t, "Extrusora 01", maq["1"])
	assert.Equal(t, "EXT-02", maq["2"])
	assert.Equal(t, "Máquina 3", maq["3"])

	assert.Equal(t, "Extrusora 01", nomeMaquina(maq, "1"))
	assert.Equal(t, "id-desconhecido", nomeMaquina(maq, "id-desconhecido"))
	assert.Equal(t, "-", nomeMaquina(maq, ""))
}
