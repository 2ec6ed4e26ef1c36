package dashboarding

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
)

type Dashboarder interface {
	// GetStats soma a receita do período por canal: redes sociais (com
	// sub_id) e Shopee Vídeo (sem sub_id).
	GetStats(userID int, period domain.Period) (*domain.DashboardStats, error)
	// GetProducts devolve as vendas agrupadas por (data, sub_id), rotuladas
	// com a origem e ordenadas da data mais recente para a mais antiga.
	GetProducts(userID int, filter domain.ProductFilter) ([]*domain.ProductGroup, error)
	// ListSales devolve as vendas individuais de uma data, na ordem de
	// inserção, para conferência do upload do dia.
	ListSales(userID int, date domain.DateOnly) ([]*domain.SaleRecord, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

func NewService(saleRepo repository.SaleRepository) Dashboarder {
	return &Service{
		saleRepo: saleRepo,
		now:      time.Now,
	}
}

func (s *Service) GetStats(userID int, period domain.Period) (*domain.DashboardStats, error) {
	start, end := period.Bounds(s.now())

	social, err := s.saleRepo.SumRevenueByChannel(userID, domain.ChannelSocial, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar receita de redes sociais")
	}

	video, err := s.saleRepo.SumRevenueByChannel(userID, domain.ChannelVideo, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar receita do Shopee Vídeo")
	}

	return &domain.DashboardStats{
		GanhosRedesSociais: social.StringFixed(2),
		GanhosShopeeVideo:  video.StringFixed(2),
	}, nil
}

func (s *Service) ListSales(userID int, date domain.DateOnly) ([]*domain.SaleRecord, error) {
	sales, err := s.saleRepo.ListByDate(userID, date)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar vendas da data %s", date)
	}

	return sales, nil
}

func (s *Service) GetProducts(userID int, filter domain.ProductFilter) ([]*domain.ProductGroup, error) {
	groups, err := s.saleRepo.GetProductGroups(userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar grupos de produtos")
	}

	for _, group := range groups {
		channel := domain.ChannelForSubID(group.SubID)
		group.Origem = channel.Origin()

		if channel == domain.ChannelSocial {
			group.ChaveGrupo = *group.SubID
			group.NomeProduto = fmt.Sprintf("Agrupado: %s", *group.SubID)
		} else {
			group.ChaveGrupo = domain.VideoGroupKey
			group.NomeProduto = "Shopee Vídeo (Agrupado)"
		}
	}

	return groups, nil
}
