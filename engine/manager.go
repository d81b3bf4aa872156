package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/op/go-logging"

	"github.com/cpacia/chialite/protocol"
)

// Sentinel errors returned on a filter's completion channel, and by
// RegisterFilter/Initialize. These mirror the section 7 taxonomy; the
// public provider package wraps them into its own exported errors.
var (
	ErrTransport = errTransport{}
	ErrTimeout   = errTimeout{}
	ErrCancelled = errCancelled{}
	ErrNotOpen   = errNotOpen{}
)

type errTransport struct{ err error }

func (e errTransport) Error() string { return "engine: transport error" }
func (e errTransport) Unwrap() error { return e.err }

// Is makes every wrapped transport error match ErrTransport, whatever the
// underlying cause.
func (e errTransport) Is(target error) bool {
	_, ok := target.(errTransport)
	return ok
}

type errTimeout struct{}

func (errTimeout) Error() string { return "engine: timeout waiting for response" }

type errCancelled struct{}

func (errCancelled) Error() string { return "engine: cancelled" }

type errNotOpen struct{}

func (errNotOpen) Error() string { return "engine: channel not open" }

// WrapTransportError wraps an underlying transport failure so callers can
// still match it with errors.Is(err, ErrTransport).
func WrapTransportError(err error) error {
	return errTransport{err: err}
}

type registerJob struct {
	filter *Filter
	result chan error
}

type frameJob struct {
	raw []byte
}

type timeoutJob struct {
	id uuid.UUID
}

type peakResult struct {
	height uint64
	ok     bool
}

type peakReq struct {
	done chan peakResult
}

type closeJob struct {
	done chan struct{}
}

// Manager is the spec's MessageManager: it owns the channel, the filter
// registry, the peak-height watcher, and the timeout scheduler. All of its
// mutable state is touched only from the single actor goroutine started by
// Initialize, directly grounded on base.ChainManager.chainHandler's
// msgChan select loop.
type Manager struct {
	channel MessageChannel
	logger  *logging.Logger
	metrics *Metrics

	msgChan chan interface{}
	stopped chan struct{}

	started atomic.Bool
	opened  atomic.Bool
	closed  atomic.Bool

	peakHeight atomic.Uint64
	peakSet    atomic.Bool

	// registry is only ever read/written from the actor goroutine.
	registry []*Filter
}

// NewManager builds a Manager around the given channel. logger may be nil,
// in which case the "engine" module logger from logging.MustGetLogger is
// used, writing to whatever backend go-logging has configured.
func NewManager(channel MessageChannel, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.MustGetLogger("engine")
	}
	return &Manager{
		channel: channel,
		logger:  logger,
		metrics: NewMetrics(),
		msgChan: make(chan interface{}, 64),
		stopped: make(chan struct{}),
	}
}

// Metrics returns the Manager's Prometheus collectors so an embedder can
// register them against its own registerer.
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}

// Initialize opens the channel, installs the permanent peak-watcher filter,
// and starts the dispatch actor. It fails with a wrapped ErrTransport if the
// channel refuses to open.
func (m *Manager) Initialize(ctx context.Context) error {
	m.started.Store(true)
	go m.run()

	m.channel.OnMessage(func(raw []byte) {
		select {
		case m.msgChan <- frameJob{raw: raw}:
		case <-m.stopped:
		}
	})

	if err := m.channel.Open(ctx); err != nil {
		m.closed.Store(true)
		done := make(chan struct{})
		m.msgChan <- closeJob{done: done}
		<-done
		close(m.stopped)
		return WrapTransportError(err)
	}
	m.opened.Store(true)

	peakWatcher := NewSubscriptionFilter(nil, m.consumePeak)
	if _, err := m.registerAndWait(peakWatcher); err != nil {
		return err
	}

	return nil
}

func (m *Manager) consumePeak(msg protocol.Message) bool {
	if msg.Type != protocol.MsgNewPeakWallet {
		return false
	}

	codec, err := protocol.NewCBORCodec[protocol.NewPeakWallet]()
	if err != nil {
		m.logger.Errorf("engine: building peak codec: %s", err)
		return false
	}

	peak, err := codec.Decode(msg.Data)
	if err != nil {
		m.logger.Warningf("engine: discarding undecodable new_peak_wallet frame: %s", err)
		m.metrics.DecodeErrors.Inc()
		return true
	}

	m.peakHeight.Store(peak.Height)
	m.peakSet.Store(true)
	m.metrics.PeakHeight.Set(float64(peak.Height))
	return true
}

// Connected reports whether Initialize has succeeded and Close has not yet
// been called.
func (m *Manager) Connected() bool {
	return m.opened.Load() && !m.closed.Load()
}

// PeakHeight returns the cached latest peak height, if one has been observed.
func (m *Manager) PeakHeight() (uint64, bool) {
	if !m.peakSet.Load() {
		return 0, false
	}
	return m.peakHeight.Load(), true
}

// RegisterFilter inserts filter into the registry, sending its
// MessageToSend exactly once if set, per spec section 4.2.
func (m *Manager) RegisterFilter(filter *Filter) error {
	if !m.Connected() {
		return ErrNotOpen
	}
	_, err := m.registerAndWait(filter)
	return err
}

func (m *Manager) registerAndWait(filter *Filter) (*Filter, error) {
	result := make(chan error, 1)
	select {
	case m.msgChan <- registerJob{filter: filter, result: result}:
	case <-m.stopped:
		return nil, ErrCancelled
	}

	select {
	case err := <-result:
		return filter, err
	case <-m.stopped:
		return nil, ErrCancelled
	}
}

// Close closes the channel, fails every outstanding completion with
// ErrCancelled, and clears the registry. It is idempotent.
func (m *Manager) Close() error {
	if m.closed.Swap(true) {
		return nil
	}

	if m.started.Load() {
		done := make(chan struct{})
		m.msgChan <- closeJob{done: done}
		<-done
	}

	close(m.stopped)
	return m.channel.Close()
}

// run is the single actor goroutine. It is the only code that ever reads or
// writes m.registry or the peak height, matching the single logical
// execution context required by spec section 5.
func (m *Manager) run() {
	timers := make(map[uuid.UUID]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for raw := range m.msgChan {
		switch job := raw.(type) {
		case registerJob:
			m.handleRegister(job, timers)

		case frameJob:
			m.handleFrame(job.raw, timers)

		case timeoutJob:
			m.handleTimeout(job.id, timers)

		case peakReq:
			height, ok := m.PeakHeight()
			job.done <- peakResult{height: height, ok: ok}

		case closeJob:
			m.handleClose(timers)
			job.done <- struct{}{}
			return
		}
	}
}

func (m *Manager) handleRegister(job registerJob, timers map[uuid.UUID]*time.Timer) {
	if job.filter.MessageToSend != nil {
		if err := m.channel.Send(job.filter.MessageToSend); err != nil {
			job.result <- WrapTransportError(err)
			return
		}
	}

	m.registry = append(m.registry, job.filter)
	m.metrics.FiltersActive.Set(float64(len(m.registry)))

	if job.filter.ExpectedMaxResponseWait > 0 {
		id := job.filter.id
		timers[id] = time.AfterFunc(job.filter.ExpectedMaxResponseWait, func() {
			select {
			case m.msgChan <- timeoutJob{id: id}:
			case <-m.stopped:
			}
		})
	}

	job.result <- nil
}

// handleFrame implements the dispatch algorithm of spec section 4.2: a
// snapshot of filters in insertion order, each given a chance to consume
// the frame. A one-shot request filter that matches is removed and
// completed immediately, claiming the frame exclusively. A persistent
// subscription filter that matches does not stop the scan: every other
// installed subscription filter whose predicate also matches the same
// frame (e.g. two independent subscribers on the same puzzle hash) still
// gets delivery.
func (m *Manager) handleFrame(raw []byte, timers map[uuid.UUID]*time.Timer) {
	msg, err := protocol.DecodeFrame(raw)
	if err != nil {
		m.logger.Warningf("engine: discarding malformed frame: %s", err)
		m.metrics.DecodeErrors.Inc()
		return
	}

	m.metrics.FramesDispatched.Inc()

	matched := false
	for i, f := range m.registry {
		if !f.Consume(msg) {
			continue
		}
		matched = true

		if !f.DeleteAfterFirstConsumed {
			continue
		}

		m.registry = append(m.registry[:i:i], m.registry[i+1:]...)
		m.metrics.FiltersActive.Set(float64(len(m.registry)))
		if t, ok := timers[f.id]; ok {
			t.Stop()
			delete(timers, f.id)
		}
		f.completion <- nil
		return
	}

	if !matched {
		m.metrics.FramesDiscarded.Inc()
	}
}

func (m *Manager) handleTimeout(id uuid.UUID, timers map[uuid.UUID]*time.Timer) {
	delete(timers, id)

	for i, f := range m.registry {
		if f.id != id {
			continue
		}

		m.registry = append(m.registry[:i:i], m.registry[i+1:]...)
		m.metrics.FiltersActive.Set(float64(len(m.registry)))
		m.metrics.Timeouts.Inc()
		f.completion <- ErrTimeout
		return
	}
}

func (m *Manager) handleClose(timers map[uuid.UUID]*time.Timer) {
	for _, t := range timers {
		t.Stop()
	}

	for _, f := range m.registry {
		if f.DeleteAfterFirstConsumed {
			f.completion <- ErrCancelled
		}
	}
	m.registry = nil
	m.metrics.FiltersActive.Set(0)
}
