package storage

import "fmt"

// Maquina é uma entrada do catálogo de máquinas.
type Maquina struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Codigo string `json:"codigo"`
}

// NomeExibicao cai para o código ou para um rótulo sintetizado quando a
// máquina foi cadastrada sem nome.
func (m *Maquina) NomeExibicao() string {
	if m.Nome != "" {
		return m.Nome
	}
	if m.Codigo != "" {
		return m.Codigo
	}
	return fmt.Sprintf("Máquina %s", m.ID)
}
