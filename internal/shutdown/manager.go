package shutdown

import (
	"context"
	"errors"
	"sync"
	"time"

	"quidque.com/discord-votebot/internal/logger"
)

type Component interface {
	Shutdown(ctx context.Context) error
	Name() string
}

// StateNotifier is told before any component stops so it can refuse new work.
type StateNotifier interface {
	SetShuttingDown(bool)
}

type Manager struct {
	components []Component
	notifier   StateNotifier
	mu         sync.RWMutex
	shutdown   chan struct{}
	once       sync.Once
}

func NewManager() *Manager {
	return &Manager{
		components: make([]Component, 0),
		shutdown:   make(chan struct{}),
	}
}

func (m *Manager) SetStateNotifier(notifier StateNotifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifier = notifier
}

func (m *Manager) Register(component Component) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, component)
	logger.Info.Printf("Registered shutdown component: %s", component.Name())
}

// Shutdown stops components in reverse registration order, one after another,
// and gives up once timeout has elapsed. Only the first call does any work.
func (m *Manager) Shutdown(timeout time.Duration) error {
	err := errors.New("shutdown already in progress")
	m.once.Do(func() {
		err = m.run(timeout)
	})
	return err
}

func (m *Manager) run(timeout time.Duration) error {
	logger.Info.Println("Initiating graceful shutdown...")

	m.mu.RLock()
	notifier := m.notifier
	components := make([]Component, len(m.components))
	copy(components, m.components)
	m.mu.RUnlock()

	if notifier != nil {
		notifier.SetShuttingDown(true)
		logger.Debug.Println("Commands disabled for shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	close(m.shutdown)

	finished := make(chan error, 1)
	go func() {
		var errs []error
		for i := len(components) - 1; i >= 0; i-- {
			comp := components[i]
			logger.Info.Printf("Shutting down component: %s", comp.Name())

			if err := comp.Shutdown(ctx); err != nil {
				logger.Error.Printf("Error shutting down %s: %v", comp.Name(), err)
				errs = append(errs, err)
				continue
			}
			logger.Info.Printf("Successfully shut down: %s", comp.Name())
		}
		finished <- errors.Join(errs...)
	}()

	select {
	case err := <-finished:
		if err == nil {
			logger.Info.Println("All components shut down successfully")
		}
		return err
	case <-ctx.Done():
		logger.Error.Println("Shutdown timed out")
		return ctx.Err()
	}
}

func (m *Manager) IsShuttingDown() bool {
	select {
	case <-m.shutdown:
		return true
	default:
		return false
	}
}
