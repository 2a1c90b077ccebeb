package document

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"theaterlist/internal/domain"
)

// DefaultPhaseDelay is the pause between the billing-sheet phase and the
// sedation-record phase. The delay keeps slow document sinks from being hit
// with both batches at once; it applies to the list as a whole.
const DefaultPhaseDelay = 5 * time.Second

var (
	// ErrEmptyList rejects generation for a list with no patients before
	// anything is written.
	ErrEmptyList = errors.New("theater list has no patients")

	// ErrGenerationInProgress rejects a second trigger while a run for the
	// same list is still active.
	ErrGenerationInProgress = errors.New("document generation already in progress for this list")
)

// Generator produces both documents for every patient of a list in two
// strictly ordered phases: all billing sheets first, then after the phase
// delay, all sedation records. At most one run per list is in flight.
type Generator struct {
	sink       DocumentSink
	phaseDelay time.Duration
	sleep      func(time.Duration)
	logger     *zap.Logger

	mu       sync.Mutex
	inFlight map[string]bool // listID -> run active
}

func NewGenerator(sink DocumentSink, phaseDelay time.Duration, logger *zap.Logger) *Generator {
	return &Generator{
		sink:       sink,
		phaseDelay: phaseDelay,
		sleep:      time.Sleep,
		logger:     logger,
		inFlight:   map[string]bool{},
	}
}

// SetSleepForTest replaces the inter-phase sleep so tests can observe the
// barrier without waiting it out.
func (g *Generator) SetSleepForTest(sleep func(time.Duration)) {
	g.sleep = sleep
}

// Generate runs both phases synchronously in roster order. A failure aborts
// the remaining documents of the run; documents already handed to the sink
// stay where they are. There is no cancellation mid-run.
func (g *Generator) Generate(ctx context.Context, list domain.TheaterList, doctors []domain.Doctor) error {
	if len(list.Patients) == 0 {
		return ErrEmptyList
	}
	if !g.tryBegin(list.ListID) {
		return ErrGenerationInProgress
	}
	defer g.end(list.ListID)
	return g.run(ctx, list, doctors)
}

// GenerateAsync reserves the list and renders in the background.
// ErrEmptyList and ErrGenerationInProgress still surface to the caller;
// everything past that point is reported through the log only.
func (g *Generator) GenerateAsync(ctx context.Context, list domain.TheaterList, doctors []domain.Doctor) error {
	if len(list.Patients) == 0 {
		return ErrEmptyList
	}
	if !g.tryBegin(list.ListID) {
		return ErrGenerationInProgress
	}
	go func() {
		defer g.end(list.ListID)
		if err := g.run(ctx, list, doctors); err != nil {
			g.logger.Error("Document generation failed",
				zap.String("list_id", list.ListID),
				zap.Error(err),
			)
		}
	}()
	return nil
}

func (g *Generator) tryBegin(listID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[listID] {
		return false
	}
	g.inFlight[listID] = true
	return true
}

func (g *Generator) end(listID string) {
	g.mu.Lock()
	delete(g.inFlight, listID)
	g.mu.Unlock()
}

func (g *Generator) run(ctx context.Context, list domain.TheaterList, doctors []domain.Doctor) error {
	// Phase 1: billing sheets.
	for _, p := range list.Patients {
		data, err := renderBillingSheet(list.Info, doctors, p)
		if err != nil {
			return fmt.Errorf("billing sheet for %s: %w", p.Name, err)
		}
		if err := g.sink.Write(ctx, fmt.Sprintf("Billing %s.pdf", p.Name), data); err != nil {
			return fmt.Errorf("billing sheet for %s: %w", p.Name, err)
		}
	}

	// The barrier is a scheduling rule, not an optimization: phase 2 never
	// starts early no matter how fast phase 1 went.
	g.sleep(g.phaseDelay)

	// Phase 2: sedation records.
	for _, p := range list.Patients {
		data, err := renderSedationRecord(list.Info, doctors, p)
		if err != nil {
			return fmt.Errorf("sedation record for %s: %w", p.Name, err)
		}
		if err := g.sink.Write(ctx, fmt.Sprintf("Sedation %s.pdf", p.Name), data); err != nil {
			return fmt.Errorf("sedation record for %s: %w", p.Name, err)
		}
	}

	g.logger.Info("generated documents for theater list",
		zap.String("list_id", list.ListID),
		zap.Int("patients", len(list.Patients)),
	)
	return nil
}
