package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	catalogusecases "github.com/niggl1/appsindico/internal/application/statuscatalog/usecases"
	"github.com/niggl1/appsindico/internal/application/testutil"
	ticketusecases "github.com/niggl1/appsindico/internal/application/ticket/usecases"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/services/markdown"
)

const tenantID uint = 8

type noopMetrics struct{}

func (noopMetrics) TicketCreated(vo.Kind)                       {}
func (noopMetrics) TimelineEventAppended(vo.Kind, vo.EventKind) {}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (n *recordingNotifier) NotifyPublicComment(_ context.Context, msg Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type fixture struct {
	tickets  *testutil.TicketRepository
	timeline *testutil.TimelineRepository
	comments *testutil.CommentRepository
	links    *testutil.ShareLinkRepository
	writer   *ticketusecases.TimelineWriter
	notifier *recordingNotifier
	tx       *testutil.Transactor
	catalog  *catalogusecases.CatalogProvider
}

func newFixture() *fixture {
	tx := &testutil.Transactor{}
	timeline := testutil.NewTimelineRepository()
	return &fixture{
		tickets:  testutil.NewTicketRepository(),
		timeline: timeline,
		comments: testutil.NewCommentRepository(),
		links:    testutil.NewShareLinkRepository(),
		writer:   ticketusecases.NewTimelineWriter(timeline, testutil.Describer{}, noopMetrics{}),
		notifier: &recordingNotifier{},
		tx:       tx,
		catalog:  catalogusecases.NewCatalogProvider(testutil.NewStatusRepository(), testutil.StandardDefaults(), tx, testutil.NewMockLogger()),
	}
}

// newTicket returns the id and chat token of a fresh checklist ticket.
func (f *fixture) newTicket(t *testing.T) (uint, string) {
	t.Helper()
	uc := ticketusecases.NewCreateTicketUseCase(
		f.tickets, f.catalog, testutil.DetailsValidator{},
		ticket.NewRandomProtocolGenerator(), ticket.NewRandomTokenGenerator(),
		f.writer, f.tx, noopMetrics{}, testutil.NewMockLogger(),
	)
	result, err := uc.Execute(context.Background(), ticketusecases.CreateTicketCommand{
		TenantID: tenantID,
		Kind:     string(vo.KindChecklist),
		Title:    "Monthly pump checklist",
		Actor:    ticketusecases.StaffActor(4, "Elisa"),
	})
	require.NoError(t, err)
	return result.TicketID, result.ChatToken
}

func (f *fixture) shareToken(t *testing.T, ticketID uint) string {
	t.Helper()
	token, err := ticket.NewRandomTokenGenerator().Generate()
	require.NoError(t, err)
	link, err := sharelink.NewShareLink(sharelink.NewShareLinkParams{
		TenantID: tenantID,
		ItemType: vo.KindChecklist,
		ItemID:   ticketID,
		Token:    token,
	})
	require.NoError(t, err)
	f.links.Put(link)
	return token
}

func (f *fixture) ticketShareToken(t *testing.T, ticketID uint) string {
	t.Helper()
	stored, err := f.tickets.GetByID(context.Background(), tenantID, vo.KindChecklist, ticketID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	return stored.ShareToken()
}

func (f *fixture) createUseCase() *CreateCommentUseCase {
	return NewCreateCommentUseCase(
		f.comments, f.tickets, f.writer, markdown.NewMarkdownService(), f.notifier, f.tx, testutil.NewMockLogger(),
	)
}

func (f *fixture) createPublicUseCase() *CreatePublicCommentUseCase {
	return NewCreatePublicCommentUseCase(
		f.comments, f.links, f.tickets, f.writer, markdown.NewMarkdownService(), f.notifier, f.tx, testutil.NewMockLogger(),
	)
}

func uintPtr(u uint) *uint { return &u }
