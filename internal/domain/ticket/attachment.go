package ticket

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/niggl1/appsindico/internal/shared/biztime"
)

const (
	maxURLLength     = 2048
	maxCaptionLength = 300
)

// Attachment is a photo or file linked to a ticket. Positions grow by one per
// upload; removing an attachment leaves a gap that is never re-packed.
type Attachment struct {
	id        uint
	tenantID  uint
	ticketID  uint
	url       string
	caption   string
	position  int
	createdAt time.Time
}

func NewAttachment(tenantID, ticketID uint, url, caption string, position int) (*Attachment, error) {
	if tenantID == 0 {
		return nil, ErrInvalidTenantID
	}
	if ticketID == 0 {
		return nil, ErrTicketNotFound
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrAttachmentURLRequired
	}
	if len(url) > maxURLLength {
		return nil, ErrAttachmentURLTooLong
	}
	caption = strings.TrimSpace(caption)
	if utf8.RuneCountInString(caption) > maxCaptionLength {
		return nil, ErrCaptionTooLong
	}
	if position < 1 {
		return nil, ErrInvalidPosition
	}

	return &Attachment{
		tenantID:  tenantID,
		ticketID:  ticketID,
		url:       url,
		caption:   caption,
		position:  position,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(id, tenantID, ticketID uint, url, caption string, position int, createdAt time.Time) *Attachment {
	return &Attachment{
		id:        id,
		tenantID:  tenantID,
		ticketID:  ticketID,
		url:       url,
		caption:   caption,
		position:  position,
		createdAt: createdAt,
	}
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) TenantID() uint       { return a.tenantID }
func (a *Attachment) TicketID() uint       { return a.ticketID }
func (a *Attachment) URL() string          { return a.url }
func (a *Attachment) Caption() string      { return a.caption }
func (a *Attachment) Position() int        { return a.position }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) {
	a.id = id
}
