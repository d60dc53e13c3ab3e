// Package comment models threaded comments attached to any ticket kind via a
// polymorphic (itemType, itemID) reference.
package comment

import (
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/biztime"
)

const (
	maxTextLength          = 4000
	maxAuthorNameLength    = 100
	maxAuthorContactLength = 150
	maxAttachments         = 10
	maxAttachmentURLLength = 2048

	// AnonymousAuthor is used when a public visitor leaves the name blank.
	AnonymousAuthor = "Anonymous"
)

// Comment is the root of a thread. Replies live in Responses, one level deep.
type Comment struct {
	id            uint
	tenantID      uint
	itemType      vo.Kind
	itemID        uint
	authorID      *uint
	authorName    string
	authorContact string
	text          string
	attachments   []string
	isInternal    bool
	isRead        bool
	readByID      *uint
	readAt        *time.Time
	createdAt     time.Time
	responses     []*Response
}

type NewCommentParams struct {
	TenantID      uint
	ItemType      vo.Kind
	ItemID        uint
	AuthorID      *uint
	AuthorName    string
	AuthorContact string
	Text          string
	Attachments   []string
	IsInternal    bool
}

func NewComment(p NewCommentParams) (*Comment, error) {
	if p.TenantID == 0 {
		return nil, ErrInvalidTenantID
	}
	if !p.ItemType.IsValid() {
		return nil, ErrInvalidItemType
	}
	if p.ItemID == 0 {
		return nil, ErrInvalidItemID
	}
	if p.IsInternal && p.AuthorID == nil {
		return nil, ErrInternalRequiresStaff
	}
	text, err := validateText(p.Text)
	if err != nil {
		return nil, err
	}
	name, err := normalizeAuthor(p.AuthorName)
	if err != nil {
		return nil, err
	}
	contact := strings.TrimSpace(p.AuthorContact)
	if utf8.RuneCountInString(contact) > maxAuthorContactLength {
		return nil, ErrAuthorContactTooLong
	}
	attachments, err := validateAttachments(p.Attachments)
	if err != nil {
		return nil, err
	}

	return &Comment{
		tenantID:      p.TenantID,
		itemType:      p.ItemType,
		itemID:        p.ItemID,
		authorID:      p.AuthorID,
		authorName:    name,
		authorContact: contact,
		text:          text,
		attachments:   attachments,
		isInternal:    p.IsInternal,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id, tenantID uint,
	itemType vo.Kind,
	itemID uint,
	authorID *uint,
	authorName, authorContact, text string,
	attachments []string,
	isInternal, isRead bool,
	readByID *uint,
	readAt *time.Time,
	createdAt time.Time,
	responses []*Response,
) *Comment {
	return &Comment{
		id:            id,
		tenantID:      tenantID,
		itemType:      itemType,
		itemID:        itemID,
		authorID:      authorID,
		authorName:    authorName,
		authorContact: authorContact,
		text:          text,
		attachments:   attachments,
		isInternal:    isInternal,
		isRead:        isRead,
		readByID:      readByID,
		readAt:        readAt,
		createdAt:     createdAt,
		responses:     responses,
	}
}

func (c *Comment) ID() uint              { return c.id }
func (c *Comment) TenantID() uint        { return c.tenantID }
func (c *Comment) ItemType() vo.Kind     { return c.itemType }
func (c *Comment) ItemID() uint          { return c.itemID }
func (c *Comment) AuthorID() *uint       { return c.authorID }
func (c *Comment) AuthorName() string    { return c.authorName }
func (c *Comment) AuthorContact() string { return c.authorContact }
func (c *Comment) Text() string          { return c.text }
func (c *Comment) IsInternal() bool      { return c.isInternal }
func (c *Comment) IsRead() bool          { return c.isRead }
func (c *Comment) ReadByID() *uint       { return c.readByID }
func (c *Comment) ReadAt() *time.Time    { return c.readAt }
func (c *Comment) CreatedAt() time.Time  { return c.createdAt }

// IsPublic reports whether the comment came from an unauthenticated visitor.
func (c *Comment) IsPublic() bool { return c.authorID == nil }

func (c *Comment) Attachments() []string {
	out := make([]string, len(c.attachments))
	copy(out, c.attachments)
	return out
}

func (c *Comment) Responses() []*Response {
	out := make([]*Response, len(c.responses))
	copy(out, c.responses)
	return out
}

func (c *Comment) SetID(id uint) {
	c.id = id
}

// MarkRead records the first reader. Later calls are no-ops and return false.
func (c *Comment) MarkRead(readerID uint) (bool, error) {
	if readerID == 0 {
		return false, ErrInvalidReader
	}
	if c.isRead {
		return false, nil
	}
	now := biztime.NowUTC()
	c.isRead = true
	c.readByID = &readerID
	c.readAt = &now
	return true, nil
}

// Response is a reply to a comment.
type Response struct {
	id         uint
	tenantID   uint
	commentID  uint
	authorID   *uint
	authorName string
	text       string
	createdAt  time.Time
}

func NewResponse(tenantID, commentID uint, authorID *uint, authorName, text string) (*Response, error) {
	if tenantID == 0 {
		return nil, ErrInvalidTenantID
	}
	if commentID == 0 {
		return nil, ErrCommentNotFound
	}
	body, err := validateText(text)
	if err != nil {
		return nil, err
	}
	name, err := normalizeAuthor(authorName)
	if err != nil {
		return nil, err
	}
	return &Response{
		tenantID:   tenantID,
		commentID:  commentID,
		authorID:   authorID,
		authorName: name,
		text:       body,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructResponse(id, tenantID, commentID uint, authorID *uint, authorName, text string, createdAt time.Time) *Response {
	return &Response{
		id:         id,
		tenantID:   tenantID,
		commentID:  commentID,
		authorID:   authorID,
		authorName: authorName,
		text:       text,
		createdAt:  createdAt,
	}
}

func (r *Response) ID() uint             { return r.id }
func (r *Response) TenantID() uint       { return r.tenantID }
func (r *Response) CommentID() uint      { return r.commentID }
func (r *Response) AuthorID() *uint      { return r.authorID }
func (r *Response) AuthorName() string   { return r.authorName }
func (r *Response) Text() string         { return r.text }
func (r *Response) CreatedAt() time.Time { return r.createdAt }

func (r *Response) SetID(id uint) {
	r.id = id
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrTextRequired
	}
	if utf8.RuneCountInString(text) > maxTextLength {
		return "", ErrTextTooLong
	}
	return text, nil
}

func normalizeAuthor(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousAuthor, nil
	}
	if utf8.RuneCountInString(name) > maxAuthorNameLength {
		return "", ErrAuthorNameTooLong
	}
	return name, nil
}

func validateAttachments(urls []string) ([]string, error) {
	if len(urls) > maxAttachments {
		return nil, ErrTooManyAttachments
	}
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" || len(u) > maxAttachmentURLLength {
			return nil, ErrInvalidAttachment
		}
		out = append(out, u)
	}
	return out, nil
}
