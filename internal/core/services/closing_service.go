package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harborops/charter_accounting_app/internal/apperrors"
	"github.com/harborops/charter_accounting_app/internal/core/domain"
	portsrepo "github.com/harborops/charter_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/harborops/charter_accounting_app/internal/core/ports/services"
	"github.com/harborops/charter_accounting_app/internal/dto"
	"github.com/harborops/charter_accounting_app/internal/middleware"
	"github.com/harborops/charter_accounting_app/internal/utils/accounting"
)

// retainedEarningsAccount receives the net income balancing line of the
// year-end close.
const retainedEarningsAccount = "3200"

// closingService nets a fiscal year's revenue and expense accounts into
// retained earnings and locks the year's periods.
type closingService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	periodRepo  portsrepo.PeriodRepositoryFacade
	uow         portsrepo.UnitOfWork
}

// NewClosingService creates the year-end close service.
func NewClosingService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	periodRepo portsrepo.PeriodRepositoryFacade,
	uow portsrepo.UnitOfWork,
) portssvc.ClosingSvcFacade {
	return &closingService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		periodRepo:  periodRepo,
		uow:         uow,
	}
}

var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

// PreCloseCheck reports whether the year looks ready to close: all twelve
// monthly periods closed and the year's posted entries balanced in aggregate.
// It never blocks the close itself.
func (s *closingService) PreCloseCheck(ctx context.Context, companyID string, fiscalYear int) (*dto.PreCloseCheckResult, error) {
	periods, err := s.periodRepo.ListPeriodsByYear(ctx, companyID, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods for %s/%d: %w", companyID, fiscalYear, err)
	}
	closedMonths := make(map[int]bool, len(periods))
	for _, p := range periods {
		if p.IsClosed {
			closedMonths[p.Month] = true
		}
	}
	openPeriods := make([]int, 0, 12)
	for month := 1; month <= 12; month++ {
		if !closedMonths[month] {
			openPeriods = append(openPeriods, month)
		}
	}

	entries, err := s.journalRepo.ListPostedEntriesByYear(ctx, companyID, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list posted entries for %s/%d: %w", companyID, fiscalYear, err)
	}
	aggregateDebit := decimal.Zero
	aggregateCredit := decimal.Zero
	for _, entry := range entries {
		debits, credits := accounting.SumLineTotals(entry.Lines)
		aggregateDebit = aggregateDebit.Add(debits)
		aggregateCredit = aggregateCredit.Add(credits)
	}
	balanced := accounting.WithinTolerance(aggregateDebit, aggregateCredit)

	return &dto.PreCloseCheckResult{
		CompanyID:       companyID,
		FiscalYear:      fiscalYear,
		OpenPeriods:     openPeriods,
		AggregateDebit:  aggregateDebit,
		AggregateCredit: aggregateCredit,
		Balanced:        balanced,
		Ready:           len(openPeriods) == 0 && balanced,
	}, nil
}

// accountBalance accumulates raw debit/credit totals for one account code
// across the year's posted entries.
type accountBalance struct {
	debits  decimal.Decimal
	credits decimal.Decimal
}

// CloseFiscalYear zeroes every revenue and expense account with a non-zero
// year balance, posts the net-income balancing line to retained earnings as a
// single posted entry, and locks all twelve periods. The entry and the period
// locks commit together.
func (s *closingService) CloseFiscalYear(ctx context.Context, companyID string, fiscalYear int, actorUserID string) (*dto.CloseYearResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, err := s.journalRepo.ListPostedEntriesByYear(ctx, companyID, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list posted entries for %s/%d: %w", companyID, fiscalYear, err)
	}

	balances := make(map[string]*accountBalance)
	codes := make([]string, 0)
	for _, entry := range entries {
		for _, line := range entry.Lines {
			bal, ok := balances[line.AccountCode]
			if !ok {
				bal = &accountBalance{debits: decimal.Zero, credits: decimal.Zero}
				balances[line.AccountCode] = bal
				codes = append(codes, line.AccountCode)
			}
			switch line.EntryType {
			case domain.Debit:
				bal.debits = bal.debits.Add(line.Amount)
			case domain.Credit:
				bal.credits = bal.credits.Add(line.Amount)
			}
		}
	}

	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to look up accounts for close: %w", err)
	}

	// One closing line per non-zero revenue/expense balance, on the side
	// opposite the balance so the account nets to zero. Net income is the
	// credit-minus-debit sum over the closed accounts.
	now := time.Now().UTC()
	var lines []domain.JournalEntryLine
	netIncome := decimal.Zero
	for _, code := range codes {
		account, ok := accounts[code]
		if !ok || !domain.IsClosable(account.AccountType) {
			continue
		}
		bal := balances[code]
		raw := bal.debits.Sub(bal.credits)
		if raw.Abs().LessThanOrEqual(accounting.Tolerance) {
			continue
		}
		netIncome = netIncome.Sub(raw)

		entryType := domain.Credit
		amount := raw
		if raw.IsNegative() {
			entryType = domain.Debit
			amount = raw.Neg()
		}
		lines = append(lines, domain.JournalEntryLine{
			LineID:      uuid.NewString(),
			AccountCode: code,
			EntryType:   entryType,
			Amount:      amount,
			Description: fmt.Sprintf("Close %s (%s) for FY%d", account.Name, code, fiscalYear),
		})
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no revenue or expense balances to close for %s/%d", apperrors.ErrValidation, companyID, fiscalYear)
	}

	if !netIncome.IsZero() {
		entryType := domain.Credit
		amount := netIncome
		if netIncome.IsNegative() {
			entryType = domain.Debit
			amount = netIncome.Neg()
		}
		lines = append(lines, domain.JournalEntryLine{
			LineID:      uuid.NewString(),
			AccountCode: retainedEarningsAccount,
			EntryType:   entryType,
			Amount:      amount,
			Description: fmt.Sprintf("Net income for FY%d", fiscalYear),
		})
	}

	closedAccounts := len(lines)
	if !netIncome.IsZero() {
		closedAccounts--
	}

	result := &dto.CloseYearResult{
		NetIncome:      netIncome,
		ClosedAccounts: closedAccounts,
		PeriodsLocked:  12,
	}
	err = s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		seq, err := s.journalRepo.NextReferenceNumber(txCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to allocate reference number: %w", err)
		}

		entry := domain.JournalEntry{
			EntryID:         uuid.NewString(),
			ReferenceNumber: fmt.Sprintf("JE-%s-%06d", companyID, seq),
			EntryDate:       time.Date(fiscalYear, time.December, 31, 0, 0, 0, 0, time.UTC),
			CompanyID:       companyID,
			Description:     fmt.Sprintf("Year-end close FY%d", fiscalYear),
			Status:          domain.EntryPosted,
			IsAutoGenerated: true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorUserID,
			},
		}
		for i := range lines {
			lines[i].EntryID = entry.EntryID
			lines[i].LineOrder = i + 1
			switch lines[i].EntryType {
			case domain.Debit:
				entry.TotalDebit = entry.TotalDebit.Add(lines[i].Amount)
			case domain.Credit:
				entry.TotalCredit = entry.TotalCredit.Add(lines[i].Amount)
			}
		}
		if !accounting.WithinTolerance(entry.TotalDebit, entry.TotalCredit) {
			return fmt.Errorf("%w: closing entry does not balance: debits %s, credits %s",
				apperrors.ErrImbalance, entry.TotalDebit.String(), entry.TotalCredit.String())
		}

		if err := s.journalRepo.SaveEntryWithLines(txCtx, entry, lines); err != nil {
			return fmt.Errorf("failed to save closing entry: %w", err)
		}
		if err := s.periodRepo.LockYear(txCtx, companyID, fiscalYear, actorUserID, now); err != nil {
			return fmt.Errorf("failed to lock periods for %s/%d: %w", companyID, fiscalYear, err)
		}

		result.EntryID = entry.EntryID
		result.ReferenceNumber = entry.ReferenceNumber
		return nil
	})
	if err != nil {
		logger.Error("Year-end close failed",
			slog.String("company_id", companyID),
			slog.Int("fiscal_year", fiscalYear),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Fiscal year closed",
		slog.String("company_id", companyID),
		slog.Int("fiscal_year", fiscalYear),
		slog.String("net_income", result.NetIncome.String()),
		slog.Int("closed_accounts", result.ClosedAccounts),
	)
	return result, nil
}
