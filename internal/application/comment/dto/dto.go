package dto

import (
	"time"

	"github.com/niggl1/appsindico/internal/domain/comment"
)

type ResponseDTO struct {
	ID         uint      `json:"id"`
	AuthorID   *uint     `json:"author_id,omitempty"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentDTO struct {
	ID            uint           `json:"id"`
	ItemType      string         `json:"item_type"`
	ItemID        uint           `json:"item_id"`
	AuthorID      *uint          `json:"author_id,omitempty"`
	AuthorName    string         `json:"author_name"`
	AuthorContact string         `json:"author_contact,omitempty"`
	Text          string         `json:"text"`
	Attachments   []string       `json:"attachments"`
	IsInternal    bool           `json:"is_internal"`
	IsRead        bool           `json:"is_read"`
	ReadByID      *uint          `json:"read_by_id,omitempty"`
	ReadAt        *time.Time     `json:"read_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	Responses     []*ResponseDTO `json:"responses"`
}

// CreateCommentRequest is posted by staff
type CreateCommentRequest struct {
	ItemType    string   `json:"item_type" binding:"required,oneof=inspection maintenance incident checklist service_order"`
	ItemID      uint     `json:"item_id" binding:"required,min=1"`
	Text        string   `json:"text" binding:"required,max=4000"`
	Attachments []string `json:"attachments,omitempty" binding:"max=10,dive,url,max=2048"`
	IsInternal  bool     `json:"is_internal"`
}

// PublicCreateCommentRequest is posted through a share link or a chat token
type PublicCreateCommentRequest struct {
	AuthorName    string   `json:"author_name" binding:"max=100"`
	AuthorContact string   `json:"author_contact,omitempty" binding:"max=150"`
	Text          string   `json:"text" binding:"required,max=4000"`
	Attachments   []string `json:"attachments,omitempty" binding:"max=10,dive,url,max=2048"`
}

type ReplyCommentRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

type CreateCommentResult struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponseDTO(r *comment.Response) *ResponseDTO {
	return &ResponseDTO{
		ID:         r.ID(),
		AuthorID:   r.AuthorID(),
		AuthorName: r.AuthorName(),
		Text:       r.Text(),
		CreatedAt:  r.CreatedAt(),
	}
}

func ToCommentDTO(c *comment.Comment) *CommentDTO {
	responses := make([]*ResponseDTO, 0, len(c.Responses()))
	for _, r := range c.Responses() {
		responses = append(responses, ToResponseDTO(r))
	}
	return &CommentDTO{
		ID:            c.ID(),
		ItemType:      c.ItemType().String(),
		ItemID:        c.ItemID(),
		AuthorID:      c.AuthorID(),
		AuthorName:    c.AuthorName(),
		AuthorContact: c.AuthorContact(),
		Text:          c.Text(),
		Attachments:   c.Attachments(),
		IsInternal:    c.IsInternal(),
		IsRead:        c.IsRead(),
		ReadByID:      c.ReadByID(),
		ReadAt:        c.ReadAt(),
		CreatedAt:     c.CreatedAt(),
		Responses:     responses,
	}
}

// ToPublicCommentDTO hides contact details and staff ids from visitors.
func ToPublicCommentDTO(c *comment.Comment) *CommentDTO {
	out := ToCommentDTO(c)
	out.AuthorID = nil
	out.AuthorContact = ""
	out.ReadByID = nil
	for _, r := range out.Responses {
		r.AuthorID = nil
	}
	return out
}

func ToCommentDTOs(list []*comment.Comment, public bool) []*CommentDTO {
	out := make([]*CommentDTO, 0, len(list))
	for _, c := range list {
		if public {
			out = append(out, ToPublicCommentDTO(c))
		} else {
			out = append(out, ToCommentDTO(c))
		}
	}
	return out
}
