package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// ProcessBatchCommandHandler orchestrates one fulfillment run end to end.
//
// Stages, in order:
//  1. Read and validate the batch input; rejected orders are quarantined
//  2. For every valid order, concurrently: resolve the delivery commitment,
//     submit to the carrier, persist the returned label
//  3. Join all per-order outcomes and report counts and failures to the run log
//  4. Write the tracking manifest and, when failures exist, the failed-orders
//     manifest (fail-soft)
//  5. Merge labels into one document, archive labels, merged document, and
//     the input file under the run's timestamp
//
// Per-order failures are converted to data at the order boundary: one bad
// order never aborts the run or delays a sibling. Stage-level failures in
// step 5 end the run and are appended to the run log as a single
// "Final errors" line; the process signals nothing else.
//
// Example:
//
//	handler := NewProcessBatchCommandHandler(
//	    source, resolver, gateway, labels, manifests, runLog, logger,
//	)
//	cmd := NewProcessBatchCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, ports.ErrNoInputFound) {
//	        return // nothing dropped, nothing to do
//	    }
//	    log.Printf("run did not start: %v", err)
//	}
type ProcessBatchCommandHandler struct {
	source    ports.OrderSource
	resolver  ports.DeliveryDateResolver
	gateway   ports.CarrierGateway
	labels    ports.LabelStore
	manifests ports.ManifestWriter
	runLog    ports.RunLog
	logger    *slog.Logger
}

// NewProcessBatchCommandHandler creates a handler wired to the run's
// collaborators. All dependencies are required.
func NewProcessBatchCommandHandler(
	source ports.OrderSource,
	resolver ports.DeliveryDateResolver,
	gateway ports.CarrierGateway,
	labels ports.LabelStore,
	manifests ports.ManifestWriter,
	runLog ports.RunLog,
	logger *slog.Logger,
) ProcessBatchCommandHandler {
	return ProcessBatchCommandHandler{
		source:    source,
		resolver:  resolver,
		gateway:   gateway,
		labels:    labels,
		manifests: manifests,
		runLog:    runLog,
		logger:    logger.With("component", "process_batch"),
	}
}

// Handle processes one batch run. It returns an error only when the run
// could not start (invalid command, unreadable input, ErrNoInputFound);
// once submission begins, failures are recorded in the run log instead.
func (h ProcessBatchCommandHandler) Handle(ctx context.Context, command ProcessBatchCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	input, err := h.source.Read(ctx)
	if err != nil {
		return err
	}

	runID := strconv.FormatInt(time.Now().Unix(), 10)
	h.logger.InfoContext(ctx, "Batch run started",
		"run_id", runID, "input", input.Name, "orders", len(input.Orders))

	valid, rejected := services.NewOrderValidator().Validate(input.Orders)

	b := batch.New()
	b.Reject(rejected)
	b.Collect(h.processOrders(ctx, valid))

	h.report(b)
	h.writeManifests(runID, input, b)

	if err := h.finalize(ctx, runID, input, b); err != nil {
		h.logger.ErrorContext(ctx, "Batch run ended with final errors", "run_id", runID, "error", err)
		h.append(fmt.Sprintf("Final errors: %v", err))
		return nil
	}

	h.logger.InfoContext(ctx, "Batch run completed",
		"run_id", runID, "succeeded", b.Succeeded(), "failed", b.Failed())
	return nil
}

// processOrders runs the per-order pipeline concurrently over all validated
// orders, one goroutine per order with no concurrency cap, and joins every
// outcome. Each task writes only its own outcome slot, so the fan-in needs
// no locking; completion of the group is the stage's barrier.
func (h ProcessBatchCommandHandler) processOrders(ctx context.Context, orders []*order.Order) []batch.Outcome {
	outcomes := make([]batch.Outcome, len(orders))

	var g errgroup.Group
	for i, o := range orders {
		g.Go(func() error {
			outcomes[i] = h.processOrder(ctx, o)
			return nil
		})
	}
	// Tasks never return errors; failures are data in the outcome slots.
	_ = g.Wait()

	return outcomes
}

// processOrder runs the enrichment, build, and submission sequence for one
// order. Any failure converts the order into a failure outcome carrying the
// most specific available message.
func (h ProcessBatchCommandHandler) processOrder(ctx context.Context, o *order.Order) batch.Outcome {
	shipDate, err := o.ShipDate()
	if err != nil {
		return batch.Fail(o, err)
	}

	schedule := services.NewPullSchedule(shipDate)
	deliveryDate, err := h.resolver.Resolve(ctx, o.DestinationAddress(), schedule.CriticalPull, o.TransitDays())
	if err != nil {
		return batch.Fail(o, err)
	}
	o.SetField(order.FieldDeliveryDate, deliveryDate)

	result, err := h.gateway.Submit(ctx, o)
	if err != nil {
		return batch.Fail(o, err)
	}

	labelPath, err := h.labels.Save(result.OrderID, result.Label)
	if err != nil {
		return batch.Fail(o, err)
	}

	return batch.Succeed(o, batch.Success{
		OrderID:        result.OrderID,
		LabelPath:      labelPath,
		TrackingNumber: result.TrackingNumber,
	})
}

// report appends the run summary and per-order failure detail to the run log.
func (h ProcessBatchCommandHandler) report(b *batch.Batch) {
	for _, line := range services.NewRunReporter().Report(b) {
		h.append(line)
	}
}

// writeManifests emits the tracking manifest and, when any order failed,
// the failed-orders manifest. Manifest writes are fail-soft: a failure is
// logged and the run continues to archival regardless.
func (h ProcessBatchCommandHandler) writeManifests(runID string, input *ports.Input, b *batch.Batch) {
	if err := h.manifests.WriteTracking(runID, input.Name, b.Successes()); err != nil {
		h.logger.Error("Unable to write tracking manifest", "run_id", runID, "error", err)
	}

	if b.Failed() == 0 {
		return
	}
	if err := h.manifests.WriteFailed(runID, input.Name, b.Failures()); err != nil {
		h.logger.Error("Unable to write failed-orders manifest", "run_id", runID, "error", err)
	}
}

// finalize merges and archives the run's artifacts. With zero successes
// there are no labels to merge or relocate; the input file is archived
// either way. The input stays in the drop directory when archival fails,
// so the run remains visible as unfinished.
func (h ProcessBatchCommandHandler) finalize(ctx context.Context, runID string, input *ports.Input, b *batch.Batch) error {
	if b.Succeeded() > 0 {
		if _, err := h.labels.Merge(ctx, runID, input.Name, b.LabelPaths()); err != nil {
			return err
		}
		if err := h.labels.Archive(runID, b.LabelPaths()); err != nil {
			return err
		}
	}

	return h.source.Archive(ctx, runID)
}

func (h ProcessBatchCommandHandler) append(line string) {
	if err := h.runLog.Append(line); err != nil {
		h.logger.Error("Unable to append to run log", "error", err)
	}
}
