package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/corralonapp/cuentas_backend/internal/apperrors"
	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	portsrepo "github.com/corralonapp/cuentas_backend/internal/core/ports/repositories"
	portssvc "github.com/corralonapp/cuentas_backend/internal/core/ports/services"
	"github.com/corralonapp/cuentas_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultWindowDays is the itemized window used when the caller does not
// override it.
const DefaultWindowDays = 30

// ledgerService assembles account statements. Everything it produces is a
// read-only projection computed fresh per request; the opening balance is
// recomputed from the store's aggregates each time rather than maintained
// incrementally, so backdated or edited events stay correct.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	eventRepo   portsrepo.LedgerEventRepository

	defaultWindowDays int
	now               func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithDefaultWindowDays overrides the default itemized window length.
func WithDefaultWindowDays(days int) LedgerServiceOption {
	return func(s *ledgerService) {
		if days > 0 {
			s.defaultWindowDays = days
		}
	}
}

// WithClock overrides the time source, used by tests to pin "today".
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepository, eventRepo portsrepo.LedgerEventRepository, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo:       accountRepo,
		eventRepo:         eventRepo,
		defaultWindowDays: DefaultWindowDays,
		now:               time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// BuildLedger assembles the ledger for one account: aggregate opening
// balance for everything before the window, itemized transactions with a
// running balance inside it. The four store reads are independent and run
// concurrently; any failure aborts the whole build, there is no partial
// ledger.
func (s *ledgerService) BuildLedger(ctx context.Context, accountID int64, windowDays int) (*domain.Ledger, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Ledger requested for unknown account", slog.Int64("account_id", accountID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to resolve account for ledger", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("%w: resolving account %d: %v", apperrors.ErrSourceUnavailable, accountID, err)
	}

	if windowDays <= 0 {
		windowDays = s.defaultWindowDays
	}
	windowStart := s.windowStart(windowDays)

	var (
		chargeSum  decimal.Decimal
		paymentSum decimal.Decimal
		charges    []domain.ChargeEvent
		payments   []domain.PaymentEvent
	)

	// The aggregate sums and the two windowed fetches have no data
	// dependency on each other; issue them together and join before merging.
	// The shared group context cancels the outstanding reads when one fails
	// or the caller aborts.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		chargeSum, err = s.eventRepo.AggregateChargeSum(gctx, accountID, windowStart)
		if err != nil {
			return fmt.Errorf("aggregating charges: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		paymentSum, err = s.eventRepo.AggregatePaymentSum(gctx, accountID, windowStart)
		if err != nil {
			return fmt.Errorf("aggregating payments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		charges, err = s.eventRepo.ListCharges(gctx, accountID, windowStart)
		if err != nil {
			return fmt.Errorf("listing charges: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		payments, err = s.eventRepo.ListPayments(gctx, accountID, windowStart)
		if err != nil {
			return fmt.Errorf("listing payments: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Ledger source read failed", slog.Int64("account_id", accountID))
		if errors.Is(err, apperrors.ErrSourceUnavailable) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}

	// Both aggregates succeeded; only now is the opening balance applied,
	// never one side without the other.
	openingBalance := chargeSum.Sub(paymentSum)

	charges, payments = s.dropMalformedEvents(ctx, accountID, charges, payments)

	transactions := accounting.MergeEvents(charges, payments)
	closingBalance := accounting.AccumulateBalances(openingBalance, transactions)

	formatter := domain.ConceptFormatterFor(account.Kind)
	for i := range transactions {
		transactions[i].Concept = formatter.FormatConcept(transactions[i])
	}

	s.LogInfo(ctx, "Ledger built",
		slog.Int64("account_id", accountID),
		slog.String("account_kind", string(account.Kind)),
		slog.Int("transaction_count", len(transactions)),
		slog.String("window_start", windowStart.Format("2006-01-02")))

	return &domain.Ledger{
		AccountID:      accountID,
		WindowStart:    windowStart,
		OpeningBalance: openingBalance,
		ClosingBalance: closingBalance,
		Transactions:   transactions,
	}, nil
}

// windowStart returns the first instant of the reporting window: today
// (UTC, date-truncated) minus windowDays.
func (s *ledgerService) windowStart(windowDays int) time.Time {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -windowDays)
}

// dropMalformedEvents filters out events missing a field the engine cannot
// default (currently: the date). One bad historical row must not block the
// whole account view, so dropped events are logged once per build and the
// rest of the ledger proceeds.
func (s *ledgerService) dropMalformedEvents(ctx context.Context, accountID int64, charges []domain.ChargeEvent, payments []domain.PaymentEvent) ([]domain.ChargeEvent, []domain.PaymentEvent) {
	dropped := 0

	keptCharges := charges[:0]
	for _, charge := range charges {
		if charge.Date.IsZero() {
			dropped++
			continue
		}
		keptCharges = append(keptCharges, charge)
	}

	keptPayments := payments[:0]
	for _, payment := range payments {
		if payment.Date.IsZero() {
			dropped++
			continue
		}
		keptPayments = append(keptPayments, payment)
	}

	if dropped > 0 {
		s.LogWarn(ctx, "Dropped malformed ledger events",
			slog.String("reason", apperrors.ErrMalformedEvent.Error()),
			slog.Int64("account_id", accountID),
			slog.Int("dropped_count", dropped))
	}
	return keptCharges, keptPayments
}
