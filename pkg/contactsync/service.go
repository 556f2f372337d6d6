// Package contactsync pushes contacts from a local store to ActiveCampaign
// using the contact sync endpoint.
package contactsync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/natserract/activecampaign/pkg/activecampaign"
	httpclient "github.com/natserract/activecampaign/pkg/http"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const defaultMaxGoroutines = 10

// Metrics tracks the outcome of a sync run
type Metrics struct {
	Succeeded int
	Failed    int
	Skipped   int
	mu        sync.Mutex
}

// AddSuccess increments the succeeded count
func (m *Metrics) AddSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Succeeded++
}

// AddFailure increments the failed count
func (m *Metrics) AddFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failed++
}

// AddSkipped increments the skipped count
func (m *Metrics) AddSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Skipped++
}

// Total returns the number of contacts processed
func (m *Metrics) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Succeeded + m.Failed + m.Skipped
}

// Service syncs every contact of a Source. Each contact is sent once; failures
// are counted and logged, never retried.
type Service struct {
	client        activecampaign.ContactsClient
	source        Source
	logger        *zap.Logger
	maxGoroutines int
}

func NewService(client activecampaign.ContactsClient, source Source, logger *zap.Logger) *Service {
	return &Service{
		client:        client,
		source:        source,
		logger:        logger,
		maxGoroutines: defaultMaxGoroutines,
	}
}

// WithMaxGoroutines bounds the number of concurrent sync requests.
func (s *Service) WithMaxGoroutines(n int) *Service {
	if n > 0 {
		s.maxGoroutines = n
	}
	return s
}

// SyncAll loads all contacts and syncs them concurrently. It only returns an
// error when the source cannot be read.
func (s *Service) SyncAll(ctx context.Context) (*Metrics, error) {
	startTime := time.Now()
	s.logger.Info("Starting contact sync")

	contacts, err := s.source.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	metrics := &Metrics{}
	p := pool.New().WithMaxGoroutines(s.maxGoroutines)
	for _, contact := range contacts {
		p.Go(func() {
			s.syncOne(ctx, contact, metrics)
		})
	}
	p.Wait()

	s.logger.Info("Completed contact sync",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("succeeded", metrics.Succeeded),
		zap.Int("failed", metrics.Failed),
		zap.Int("skipped", metrics.Skipped))

	return metrics, nil
}

func (s *Service) syncOne(ctx context.Context, contact activecampaign.Contact, metrics *Metrics) {
	if err := contact.Validate(); err != nil {
		metrics.AddSkipped()
		s.logger.Warn("Skipping invalid contact", zap.Error(err))
		return
	}

	resp, err := s.client.SyncContact(ctx, contact)
	if err != nil {
		metrics.AddFailure()
		s.logger.Error("Failed to sync contact",
			zap.String("email", contact.Email),
			zap.Error(err))
		return
	}

	body, _ := httpclient.ReadBody(resp)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.AddFailure()
		s.logger.Error("Contact sync rejected",
			zap.String("email", contact.Email),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		return
	}

	metrics.AddSuccess()
	s.logger.Debug("Synced contact",
		zap.String("email", contact.Email),
		zap.Int("status_code", resp.StatusCode))
}
