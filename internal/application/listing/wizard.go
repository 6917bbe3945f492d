package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/google/uuid"
)

// Wizard state names. The continuation state for a channel source follows
// the naming contract "start_<source>"; integrations must register a step
// under that exact name to plug into the guided flow.
const (
	WizardStateStart = "start"
	WizardStateEnd   = "end"

	wizardStatePrefix = "start_"
)

var (
	ErrWizardSessionNotFound = errors.New("wizard: session not found")
	ErrWizardFinished        = errors.New("wizard: session already finished")
	ErrWizardSourceExcluded  = errors.New("wizard: channel source is not enabled for listing")
)

// WizardStateError reports a continuation state that failed to resolve,
// meaning no step is registered for the selected channel's source.
type WizardStateError struct {
	State string
}

// Error implements the error interface
func (e *WizardStateError) Error() string {
	return fmt.Sprintf("wizard: state %q is not registered", e.State)
}

// WizardStep is the channel-specific continuation of the add-listing flow.
// It receives the session after the channel selection and returns the name
// of the next state, eventually WizardStateEnd.
type WizardStep func(ctx context.Context, session *WizardSession) (string, error)

// WizardSession is the transient state of one add-listing flow. Sessions
// live in memory only; cancellation simply discards them.
type WizardSession struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	ProductID uuid.UUID
	ChannelID uuid.UUID
	Source    channel.Source
	State     string
}

// Finished returns true once the session reached the terminal state
func (s *WizardSession) Finished() bool {
	return s.State == WizardStateEnd
}

// ListingWizard drives the guided add-listing flow: collect a channel
// selection for a product in the start state, then branch into the
// channel-specific continuation state named "start_<source>". The
// continuation is resolved through a static step table, so every source a
// downstream integration enables must also register its step.
type ListingWizard struct {
	channels channel.SaleChannelRepository

	mu       sync.RWMutex
	sources  map[channel.Source]bool
	steps    map[string]WizardStep
	sessions map[uuid.UUID]*WizardSession
}

// NewListingWizard creates a wizard with no enabled sources. Downstream
// integrations call AddSource and RegisterStep during setup.
func NewListingWizard(channels channel.SaleChannelRepository) *ListingWizard {
	return &ListingWizard{
		channels: channels,
		sources:  make(map[channel.Source]bool),
		steps:    make(map[string]WizardStep),
		sessions: make(map[uuid.UUID]*WizardSession),
	}
}

// AddSource enables a channel source for the wizard, idempotently. Sources
// never enabled cannot be selected in the start state.
func (w *ListingWizard) AddSource(source channel.Source) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sources[source] = true
}

// RegisterStep registers the continuation step for a state name, usually
// StateNameFor(source)
func (w *ListingWizard) RegisterStep(state string, step WizardStep) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.steps[state] = step
}

// StateNameFor returns the continuation state name for a source
func StateNameFor(source channel.Source) string {
	return wizardStatePrefix + source.String()
}

// AllowedSources returns the sources enabled for the wizard
func (w *ListingWizard) AllowedSources() []channel.Source {
	w.mu.RLock()
	defer w.mu.RUnlock()
	sources := make([]channel.Source, 0, len(w.sources))
	for s := range w.sources {
		sources = append(sources, s)
	}
	return sources
}

// Start opens a new session in the start state, pre-populated with the
// product from the invoking context
func (w *ListingWizard) Start(tenantID, productID uuid.UUID) *WizardSession {
	session := &WizardSession{
		ID:        uuid.New(),
		TenantID:  tenantID,
		ProductID: productID,
		State:     WizardStateStart,
	}

	w.mu.Lock()
	w.sessions[session.ID] = session
	w.mu.Unlock()
	return session
}

// Session returns a session by ID
func (w *ListingWizard) Session(id uuid.UUID) (*WizardSession, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	session, ok := w.sessions[id]
	if !ok {
		return nil, ErrWizardSessionNotFound
	}
	return session, nil
}

// Next applies the channel selection and transitions the session out of the
// start state into "start_<source>", running the registered step for that
// state. Fails with WizardStateError when the source has no registered step.
func (w *ListingWizard) Next(ctx context.Context, sessionID, channelID uuid.UUID) (*WizardSession, error) {
	session, err := w.Session(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Finished() {
		return nil, ErrWizardFinished
	}

	ch, err := w.channels.FindByID(ctx, session.TenantID, channelID)
	if err != nil {
		return nil, err
	}

	w.mu.RLock()
	allowed := w.sources[ch.Source]
	w.mu.RUnlock()
	if !allowed {
		return nil, ErrWizardSourceExcluded
	}

	session.ChannelID = ch.ID
	session.Source = ch.Source
	session.State = StateNameFor(ch.Source)

	// Run registered steps until a step parks the session or the flow ends.
	for session.State != WizardStateEnd {
		w.mu.RLock()
		step, ok := w.steps[session.State]
		w.mu.RUnlock()
		if !ok {
			return nil, &WizardStateError{State: session.State}
		}

		next, err := step(ctx, session)
		if err != nil {
			return nil, err
		}
		if next == session.State {
			// Step is waiting for more input in the same state.
			break
		}
		session.State = next
	}

	if session.Finished() {
		w.Cancel(session.ID)
	}
	return session, nil
}

// Cancel discards a session. There is no cleanup beyond dropping the state.
func (w *ListingWizard) Cancel(sessionID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.sessions, sessionID)
}
