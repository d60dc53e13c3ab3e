package usecases

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	catalogusecases "github.com/niggl1/appsindico/internal/application/statuscatalog/usecases"
	"github.com/niggl1/appsindico/internal/application/testutil"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/services/markdown"
)

const tenantID uint = 3

// sequenceGenerator returns values in order, then keeps returning the last one.
type sequenceGenerator struct {
	mu     sync.Mutex
	values []string
	calls  int
}

func (g *sequenceGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if len(g.values) == 0 {
		return fmt.Sprintf("%06d", g.calls), nil
	}
	i := g.calls - 1
	if i >= len(g.values) {
		i = len(g.values) - 1
	}
	return g.values[i], nil
}

type counterTokens struct {
	mu sync.Mutex
	n  int
}

func (g *counterTokens) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("token-%02d-abcdefghijklmnopqrstuvwxyz", g.n), nil
}

type recordingMetrics struct {
	created []vo.Kind
	events  []vo.EventKind
}

func (m *recordingMetrics) TicketCreated(kind vo.Kind) { m.created = append(m.created, kind) }

func (m *recordingMetrics) TimelineEventAppended(kind vo.Kind, event vo.EventKind) {
	m.events = append(m.events, event)
}

type fixedRelative struct{}

func (fixedRelative) Format(time.Time) string { return "just now" }

type failingLoader struct{}

func (failingLoader) Load(context.Context, uint) (statuscatalog.Catalog, error) {
	return nil, testutil.ErrUnavailable
}

type fixture struct {
	statuses    *testutil.StatusRepository
	tickets     *testutil.TicketRepository
	timeline    *testutil.TimelineRepository
	attachments *testutil.AttachmentRepository
	comments    *testutil.CommentRepository
	links       *testutil.ShareLinkRepository
	catalog     *catalogusecases.CatalogProvider
	protocols   *sequenceGenerator
	metrics     *recordingMetrics
	writer      *TimelineWriter
	presenter   *Presenter
	tx          *testutil.Transactor
}

func newFixture() *fixture {
	f := &fixture{
		statuses:    testutil.NewStatusRepository(),
		tickets:     testutil.NewTicketRepository(),
		timeline:    testutil.NewTimelineRepository(),
		attachments: testutil.NewAttachmentRepository(),
		comments:    testutil.NewCommentRepository(),
		links:       testutil.NewShareLinkRepository(),
		protocols:   &sequenceGenerator{},
		metrics:     &recordingMetrics{},
		tx:          &testutil.Transactor{},
	}
	f.catalog = catalogusecases.NewCatalogProvider(f.statuses, testutil.StandardDefaults(), f.tx, testutil.NewMockLogger())
	f.writer = NewTimelineWriter(f.timeline, testutil.Describer{}, f.metrics)
	f.presenter = NewPresenter(markdown.NewMarkdownService(), testutil.NewMockLogger())
	return f
}

func (f *fixture) createUseCase() *CreateTicketUseCase {
	return NewCreateTicketUseCase(
		f.tickets, f.catalog, testutil.DetailsValidator{}, f.protocols, &counterTokens{},
		f.writer, f.tx, f.metrics, testutil.NewMockLogger(),
	)
}

func (f *fixture) updateUseCase() *UpdateTicketUseCase {
	return NewUpdateTicketUseCase(
		f.tickets, f.catalog, testutil.DetailsValidator{}, f.writer, f.presenter, f.tx, testutil.NewMockLogger(),
	)
}

func (f *fixture) status(t *testing.T, name string) *statuscatalog.StatusDefinition {
	t.Helper()
	catalog, err := f.catalog.Load(context.Background(), tenantID)
	require.NoError(t, err)
	for _, s := range catalog {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("status %q not found", name)
	return nil
}

// newTicket creates a maintenance ticket through the use case.
func (f *fixture) newTicket(t *testing.T, title string) *CreateTicketResult {
	t.Helper()
	staff := StaffActor(11, "Carla")
	result, err := f.createUseCase().Execute(context.Background(), CreateTicketCommand{
		TenantID: tenantID,
		Kind:     string(vo.KindMaintenance),
		Title:    title,
		Actor:    staff,
	})
	require.NoError(t, err)
	return result
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }
