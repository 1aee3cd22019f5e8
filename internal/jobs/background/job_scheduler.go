package background

import (
	"context"
	"log"
	"time"

	"modamart/internal/jobs"
	"modamart/internal/services"

	"github.com/go-co-op/gocron/v2"
)

// JobScheduler runs the periodic maintenance jobs: the restock sweep that
// turns outstanding low-stock alerts into purchase orders, and the designer
// performance cache refresh.
type JobScheduler struct {
	scheduler      gocron.Scheduler
	poService      services.PurchaseOrderService
	catalogService services.CatalogService
	reporter       *jobs.LowStockReporter
}

func NewJobScheduler(poService services.PurchaseOrderService, catalogService services.CatalogService, reporter *jobs.LowStockReporter) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:      scheduler,
		poService:      poService,
		catalogService: catalogService,
		reporter:       reporter,
	}
	js.registerJobs()
	return js, nil
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	_, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.runRestockSweep),
		gocron.WithName("restock-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create restock sweep job: %v", err)
	}

	_, err = js.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(js.refreshDesignerPerformance),
		gocron.WithName("designer-performance-refresh"),
	)
	if err != nil {
		log.Printf("Failed to create designer performance refresh job: %v", err)
	}

	_, err = js.scheduler.NewJob(
		gocron.DurationJob(6*time.Hour),
		gocron.NewTask(js.runLowStockReport),
		gocron.WithName("low-stock-report"),
	)
	if err != nil {
		log.Printf("Failed to create low stock report job: %v", err)
	}
}

func (js *JobScheduler) runRestockSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	created, err := js.poService.SweepLowStockAlerts(ctx)
	if err != nil {
		log.Printf("Restock sweep failed: %v", err)
		return
	}
	if created > 0 {
		log.Printf("Restock sweep created %d purchase orders", created)
	}
}

func (js *JobScheduler) refreshDesignerPerformance() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	if err := js.catalogService.RefreshDesignerPerformance(ctx); err != nil {
		log.Printf("Designer performance refresh failed: %v", err)
	}
}

func (js *JobScheduler) runLowStockReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	entries, err := js.reporter.Check(ctx)
	if err != nil {
		log.Printf("Low stock report failed: %v", err)
		return
	}
	js.reporter.LogReport(entries)
}
