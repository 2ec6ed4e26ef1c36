package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/affiliate-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/affiliate-dashboard-api/internal/domain"
	"github.com/vfg2006/affiliate-dashboard-api/pkg/log"
)

var (
	ErrMissingReportKey = errors.New("sub_id e data são obrigatórios")
	ErrReportNotFound   = errors.New("relatório não encontrado")
	ErrMissingExpense   = errors.New("descrição do gasto é obrigatória")
)

type Reporter interface {
	// UpsertManualReport grava o relatório do dia, recalculando o lucro como
	// receita menos gasto. Retorna o relatório resultante e se foi criado
	// (true) ou atualizado (false).
	UpsertManualReport(report *domain.DailyReport) (*domain.DailyReport, bool, error)
	// ListReports lista por data exata quando date é informado; caso
	// contrário usa o período nomeado.
	ListReports(userID int, date string, period domain.Period) ([]*domain.DailyReport, error)
	// CreateExpense insere o gasto e, quando vinculado a um relatório,
	// ressincroniza o gasto_total do relatório com a soma dos gastos.
	CreateExpense(expense *domain.Expense) (*domain.Expense, error)
	// ListExpenses lista os gastos vinculados a um relatório, do mais antigo
	// para o mais recente.
	ListExpenses(userID int, reportID int64) ([]*domain.Expense, error)
	ListWeeklySummaries(userID int) ([]*domain.WeeklySummary, error)
	ListMonthlySummaries(userID int) ([]*domain.MonthlySummary, error)
}

type Service struct {
	reportRepo  repository.ReportRepository
	expenseRepo repository.ExpenseRepository
	summaryRepo repository.SummaryRepository
	now         func() time.Time
}

func NewService(
	reportRepo repository.ReportRepository,
	expenseRepo repository.ExpenseRepository,
	summaryRepo repository.SummaryRepository,
) Reporter {
	return &Service{
		reportRepo:  reportRepo,
		expenseRepo: expenseRepo,
		summaryRepo: summaryRepo,
		now:         time.Now,
	}
}

func (s *Service) UpsertManualReport(report *domain.DailyReport) (*domain.DailyReport, bool, error) {
	if report.SubID == "" || report.Data.IsZero() {
		return nil, false, ErrMissingReportKey
	}

	report.RecalculateProfit()

	existing, err := s.reportRepo.GetByKey(report.UserID, report.SubID, report.Data)
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao verificar relatório existente")
	}

	saved, err := s.reportRepo.Upsert(report)
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao gravar relatório")
	}

	created := existing == nil
	return saved, created, nil
}

func (s *Service) ListReports(userID int, date string, period domain.Period) ([]*domain.DailyReport, error) {
	if date != "" {
		parsed, err := domain.ParseDateOnly(date)
		if err != nil {
			return nil, err
		}
		return s.reportRepo.ListByDate(userID, parsed)
	}

	start, end := period.Bounds(s.now())
	return s.reportRepo.ListByRange(userID, start, end)
}

func (s *Service) CreateExpense(expense *domain.Expense) (*domain.Expense, error) {
	if expense.Descricao == "" {
		return nil, ErrMissingExpense
	}

	var report *domain.DailyReport
	if expense.RelatorioID != nil {
		found, err := s.reportRepo.GetByID(expense.UserID, *expense.RelatorioID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar relatório do gasto")
		}
		if found == nil {
			return nil, ErrReportNotFound
		}
		report = found
	}

	created, err := s.expenseRepo.Create(expense)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inserir gasto")
	}

	// gasto_total do relatório é derivado da soma dos gastos vinculados;
	// regravamos o agregado a cada lançamento para manter lucro consistente
	if report != nil {
		if err := s.resyncReportCost(report); err != nil {
			log.L.WithError(err).WithFields(log.Fields{
				"report_id":  report.ID,
				"expense_id": created.ID,
			}).Error("expenses: gasto inserido mas relatório não foi ressincronizado")
			return nil, err
		}
	}

	return created, nil
}

func (s *Service) ListExpenses(userID int, reportID int64) ([]*domain.Expense, error) {
	report, err := s.reportRepo.GetByID(userID, reportID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar relatório dos gastos")
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	return s.expenseRepo.ListByReportID(userID, reportID)
}

func (s *Service) resyncReportCost(report *domain.DailyReport) error {
	total, err := s.expenseRepo.SumByReportID(report.UserID, report.ID)
	if err != nil {
		return errors.Wrap(err, "erro ao somar gastos do relatório")
	}

	profit := report.ReceitaTotal.Sub(total)
	if err := s.reportRepo.UpdateCostAndProfit(report.UserID, report.ID, total, profit); err != nil {
		return errors.Wrap(err, "erro ao atualizar gasto e lucro do relatório")
	}

	return nil
}

func (s *Service) ListWeeklySummaries(userID int) ([]*domain.WeeklySummary, error) {
	return s.summaryRepo.ListWeekly(userID)
}

func (s *Service) ListMonthlySummaries(userID int) ([]*domain.MonthlySummary, error) {
	return s.summaryRepo.ListMonthly(userID)
}
