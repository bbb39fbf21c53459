package storage

import "time"

// Tipos de parada armazenados (vocabulário fixo; exibição em internal/constants).
const (
	ParadaSetup        = "setup"
	ParadaNaoPlanejada = "nao_planejada"
	ParadaManutencao   = "manutencao"
	ParadaPlanejada    = "planejada"
)

// Parada é um registro bruto de parada de máquina. Registros antigos chegam
// com as colunas *_timestamp e a grafia camelCase dos campos de motivo/tipo;
// a normalização obrigatória antes de qualquer uso fica em internal/report.
type Parada struct {
	Maquina string `json:"maquina"`

	Inicio          *time.Time `json:"inicio"`
	InicioTimestamp *time.Time `json:"inicio_timestamp"`
	Fim             *time.Time `json:"fim"`
	FimTimestamp    *time.Time `json:"fim_timestamp"`

	MotivoParada       string `json:"motivo_parada"`
	MotivoParadaLegado string `json:"motivoParada"`
	TipoParada         string `json:"tipo_parada"`
	TipoParadaLegado   string `json:"tipoParada"`
}
