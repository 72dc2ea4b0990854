package middleware

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"

	"github.com/tair/bookmypanditji/pkg/logger"
)

// CircuitState is the state of a circuit breaker
type CircuitState string

const (
	StateClosed   CircuitState = "closed"
	StateOpen     CircuitState = "open"
	StateHalfOpen CircuitState = "half-open"
)

// halfOpenSuccesses closes a half-open circuit
const halfOpenSuccesses = 3

// ErrCircuitOpen is returned by Call while the circuit rejects requests
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreaker stops forwarding to the catalog service after repeated 5xx
// responses and probes it again once the open timeout has passed.
type CircuitBreaker struct {
	name        string
	maxFailures int
	timeout     time.Duration
	now         func() time.Time

	mu              sync.Mutex
	state           CircuitState
	failures        int
	successCount    int
	lastStateChange time.Time
}

// NewCircuitBreaker creates a closed circuit breaker
func NewCircuitBreaker(name string, maxFailures int, timeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		name:            name,
		maxFailures:     maxFailures,
		timeout:         timeout,
		now:             time.Now,
		state:           StateClosed,
		lastStateChange: time.Now(),
	}
}

// State returns the current state, moving open to half-open when due
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.advance()
	return cb.state
}

func (cb *CircuitBreaker) advance() {
	if cb.state == StateOpen && cb.now().Sub(cb.lastStateChange) >= cb.timeout {
		cb.transition(StateHalfOpen)
		cb.successCount = 0
	}
}

func (cb *CircuitBreaker) transition(to CircuitState) {
	logger.Logger.Info().
		Str("circuit", cb.name).
		Str("from", string(cb.state)).
		Str("to", string(to)).
		Int("failures", cb.failures).
		Msg("Circuit breaker state change")
	cb.state = to
	cb.lastStateChange = cb.now()
}

// Call runs fn unless the circuit is open and records its outcome
func (cb *CircuitBreaker) Call(fn func() error) error {
	if cb.State() == StateOpen {
		return fmt.Errorf("%s: %w", cb.name, ErrCircuitOpen)
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.onFailure()
	} else {
		cb.onSuccess()
	}
	return err
}

func (cb *CircuitBreaker) onFailure() {
	cb.failures++
	switch {
	case cb.state == StateHalfOpen:
		cb.transition(StateOpen)
	case cb.state == StateClosed && cb.failures >= cb.maxFailures:
		cb.transition(StateOpen)
	}
}

func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case StateHalfOpen:
		cb.successCount++
		if cb.successCount >= halfOpenSuccesses {
			cb.failures = 0
			cb.transition(StateClosed)
		}
	case StateClosed:
		cb.failures = 0
	}
}

// Stats reports the breaker for the gateway health endpoint
func (cb *CircuitBreaker) Stats() fiber.Map {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return fiber.Map{
		"name":              cb.name,
		"state":             cb.state,
		"failures":          cb.failures,
		"max_failures":      cb.maxFailures,
		"last_state_change": cb.lastStateChange,
	}
}

// CircuitBreakerMiddleware rejects proxied requests with 503 while cb is open
func CircuitBreakerMiddleware(cb *CircuitBreaker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var responseErr error
		err := cb.Call(func() error {
			responseErr = c.Next()
			if status := c.Response().StatusCode(); status >= fiber.StatusInternalServerError {
				return fmt.Errorf("upstream status %d", status)
			}
			return nil
		})

		if errors.Is(err, ErrCircuitOpen) {
			logger.Warn(c.UserContext()).
				Str("path", c.Path()).
				Msg("Circuit breaker is open - request blocked")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"error":   "The catalog is temporarily unavailable. Please try again shortly.",
			})
		}
		return responseErr
	}
}
