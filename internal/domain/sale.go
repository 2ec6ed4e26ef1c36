package domain

import (
	"github.com/shopspring/decimal"
)

// Channel classifica a origem de uma venda: com sub_id a venda veio de um
// link rastreado de rede social, sem sub_id veio do Shopee Vídeo.
type Channel string

const (
	ChannelSocial Channel = "social"
	ChannelVideo  Channel = "video"
)

// Rótulos exibidos no dashboard
const (
	OriginSocialNetwork = "Redes Sociais"
	OriginShopeeVideo   = "Shopee Vídeo"
)

// VideoGroupKey é a chave do bucket de vendas sem sub_id na visão agrupada de
// produtos. É só um rótulo de grupo na resposta: a classificação é decidida
// pela ausência do sub_id, nunca por comparação com esta string.
const VideoGroupKey = "shopee-video-group"

// ChannelForSubID decide o canal a partir da presença do sub_id.
func ChannelForSubID(subID *string) Channel {
	if subID != nil && *subID != "" {
		return ChannelSocial
	}
	return ChannelVideo
}

func (c Channel) Origin() string {
	if c == ChannelSocial {
		return OriginSocialNetwork
	}
	return OriginShopeeVideo
}

// SaleRecord é uma linha importada da planilha de vendas de afiliado.
// Registros são sempre criados em lote pelo upload e nunca atualizados
// individualmente: o upload de uma data apaga e regrava todas as linhas dela.
type SaleRecord struct {
	ID          int64           `json:"id"`
	UserID      int             `json:"-"`
	Data        DateOnly        `json:"data"`
	Receita     decimal.Decimal `json:"receita"`
	SubID       *string         `json:"sub_id"`
	NomeProduto *string         `json:"nome_produto"`
	Quantidade  int             `json:"quantidade"`
}

func (s *SaleRecord) Channel() Channel {
	return ChannelForSubID(s.SubID)
}

// DashboardStats é o total de receita por canal, serializado como string
// decimal igual ao dashboard original.
type DashboardStats struct {
	GanhosRedesSociais string `json:"ganhos_redes_sociais"`
	GanhosShopeeVideo  string `json:"ganhos_shopee_video"`
}

// ProductGroup é uma linha da visão de produtos: vendas agrupadas por
// (data, sub_id), com o bucket de vídeo reunindo as linhas sem sub_id.
type ProductGroup struct {
	Data        DateOnly        `json:"data"`
	NomeProduto string          `json:"nome_produto"`
	SubID       *string         `json:"sub_id"`
	ChaveGrupo  string          `json:"chave_grupo"`
	Receita     decimal.Decimal `json:"receita"`
	Quantidade  int             `json:"quantidade"`
	Origem      string          `json:"origem"`
}

// ProductFilter restringe a visão de produtos a um canal antes da agregação.
type ProductFilter string

const (
	FilterAll    ProductFilter = "all"
	FilterSocial ProductFilter = "social"
	FilterVideo  ProductFilter = "video"
)

func ParseProductFilter(s string) ProductFilter {
	switch ProductFilter(s) {
	case FilterSocial:
		return FilterSocial
	case FilterVideo:
		return FilterVideo
	default:
		return FilterAll
	}
}
