package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	catalogusecases "github.com/niggl1/appsindico/internal/application/statuscatalog/usecases"
	"github.com/niggl1/appsindico/internal/application/testutil"
	ticketusecases "github.com/niggl1/appsindico/internal/application/ticket/usecases"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/services/markdown"
)

const tenantID uint = 5

type noopTicketMetrics struct{}

func (noopTicketMetrics) TicketCreated(vo.Kind)                       {}
func (noopTicketMetrics) TimelineEventAppended(vo.Kind, vo.EventKind) {}

type resolveMetrics struct {
	results []string
}

func (m *resolveMetrics) ShareLinkResolved(result string) { m.results = append(m.results, result) }

type fixedRelative struct{}

func (fixedRelative) Format(time.Time) string { return "a moment ago" }

type fixture struct {
	tickets     *testutil.TicketRepository
	timeline    *testutil.TimelineRepository
	attachments *testutil.AttachmentRepository
	links       *testutil.ShareLinkRepository
	catalog     *catalogusecases.CatalogProvider
	writer      *ticketusecases.TimelineWriter
	presenter   *ticketusecases.Presenter
	metrics     *resolveMetrics
	tx          *testutil.Transactor
}

func newFixture() *fixture {
	tx := &testutil.Transactor{}
	timeline := testutil.NewTimelineRepository()
	return &fixture{
		tickets:     testutil.NewTicketRepository(),
		timeline:    timeline,
		attachments: testutil.NewAttachmentRepository(),
		links:       testutil.NewShareLinkRepository(),
		catalog:     catalogusecases.NewCatalogProvider(testutil.NewStatusRepository(), testutil.StandardDefaults(), tx, testutil.NewMockLogger()),
		writer:      ticketusecases.NewTimelineWriter(timeline, testutil.Describer{}, noopTicketMetrics{}),
		presenter:   ticketusecases.NewPresenter(markdown.NewMarkdownService(), testutil.NewMockLogger()),
		metrics:     &resolveMetrics{},
		tx:          tx,
	}
}

func (f *fixture) newTicket(t *testing.T) uint {
	t.Helper()
	uc := ticketusecases.NewCreateTicketUseCase(
		f.tickets, f.catalog, testutil.DetailsValidator{},
		ticket.NewRandomProtocolGenerator(), ticket.NewRandomTokenGenerator(),
		f.writer, f.tx, noopTicketMetrics{}, testutil.NewMockLogger(),
	)
	result, err := uc.Execute(context.Background(), ticketusecases.CreateTicketCommand{
		TenantID: tenantID,
		Kind:     string(vo.KindIncident),
		Title:    "Water in the garage",
		Actor:    ticketusecases.StaffActor(9, "Dora"),
	})
	require.NoError(t, err)
	return result.TicketID
}

func (f *fixture) createUseCase(policy ExpiryPolicy) *CreateShareLinkUseCase {
	return NewCreateShareLinkUseCase(f.links, f.tickets, ticket.NewRandomTokenGenerator(), policy, testutil.NewMockLogger())
}

func (f *fixture) newLink(t *testing.T, ticketID uint, editable bool, hours *int) string {
	t.Helper()
	result, err := f.createUseCase(ExpiryPolicy{MaxHours: 24 * 90}).Execute(context.Background(), CreateShareLinkCommand{
		TenantID:      tenantID,
		ItemType:      string(vo.KindIncident),
		ItemID:        ticketID,
		Editable:      editable,
		ExpiryHours:   hours,
		CreatedByName: "Dora",
	})
	require.NoError(t, err)
	return result.Token
}

func (f *fixture) ticketShareToken(t *testing.T, ticketID uint) string {
	t.Helper()
	stored, err := f.tickets.GetByID(context.Background(), tenantID, vo.KindIncident, ticketID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	return stored.ShareToken()
}

func (f *fixture) resolveUseCase() *ResolveShareLinkUseCase {
	return NewResolveShareLinkUseCase(
		f.links, f.tickets, f.attachments, f.timeline, f.catalog, f.presenter,
		fixedRelative{}, f.metrics, testutil.NewMockLogger(),
	)
}

func intPtr(i int) *int    { return &i }
func uintPtr(u uint) *uint { return &u }
