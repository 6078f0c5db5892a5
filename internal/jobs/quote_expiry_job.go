package jobs

import (
	"context"
	"errors"
	"log/slog"

	"bottleworks/internal/core/application/usecases/commands"
	"bottleworks/internal/core/domain/model/order"
	"bottleworks/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// QuoteExpiryJob sweeps orders whose quote deadline has lapsed and moves
// them to quote_expired through the normal transition path, so the sweep
// produces the same audit trail as a staff action.
type QuoteExpiryJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.RequestOrderTransitionCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewQuoteExpiryJob creates a job that expires lapsed quotes every minute.
func NewQuoteExpiryJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.RequestOrderTransitionCommandHandler,
	logger *slog.Logger,
) *QuoteExpiryJob {
	return &QuoteExpiryJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "quote_expiry_job"),
	}
}

// Start begins the quote expiry job to run at the top of every minute.
func (j *QuoteExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		j.sweep(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiry job started (running every minute)")
	return nil
}

// Stop stops the quote expiry job.
func (j *QuoteExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote expiry job stopped")
}

func (j *QuoteExpiryJob) sweep(ctx context.Context) {
	uow := j.uowFactory.Create()

	lapsed, err := uow.OrderRepository().GetAllWithLapsedQuotes(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Quote expiry sweep failed", "error", err)
		return
	}

	for _, lapsedOrder := range lapsed {
		cmd, cmdErr := commands.NewRequestOrderTransitionCommand(
			lapsedOrder.ID(), order.StatusQuoteExpired, "", nil)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Quote expiry command rejected",
				"order_id", lapsedOrder.ID().String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A concurrent staff action moving the order is not a fault
			if errors.Is(handleErr, errs.ErrConflictingUpdate) ||
				errors.Is(handleErr, errs.ErrTransitionBlocked) {
				continue
			}
			j.logger.ErrorContext(ctx, "Quote expiry transition failed",
				"order_id", lapsedOrder.ID().String(), "error", handleErr)
		}
	}
}
