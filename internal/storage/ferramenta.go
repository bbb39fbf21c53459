package storage

// Modos de embalagem do catálogo de ferramentas.
const (
	EmbalagemPallet = "pallet"
	EmbalagemCaixa  = "caixa"
)

// FerramentaCfg é a configuração de embalagem/dimensão de uma ferramenta de
// corte, usada na estimativa de expedição.
type FerramentaCfg struct {
	Ferramenta     string  `json:"ferramenta"`
	Embalagem      string  `json:"embalagem"`
	ComprimentoMM  float64 `json:"comprimento_mm"`
	PesoLinear     float64 `json:"peso_linear"`
	PcsPorPallet   float64 `json:"pcs_por_pallet"`
	RipasPorPallet float64 `json:"ripas_por_pallet"`
	PcsPorCaixa    float64 `json:"pcs_por_caixa"`
}
