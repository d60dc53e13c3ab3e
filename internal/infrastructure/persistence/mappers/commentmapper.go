package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/niggl1/appsindico/internal/domain/comment"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
)

type CommentMapper interface {
	ToModel(c *comment.Comment) (*models.CommentModel, error)
	ToDomain(model *models.CommentModel, responses []models.CommentResponseModel) (*comment.Comment, error)
	ResponseToModel(r *comment.Response) *models.CommentResponseModel
	ResponseToDomain(model *models.CommentResponseModel) *comment.Response
}

type CommentMapperImpl struct{}

func NewCommentMapper() CommentMapper {
	return &CommentMapperImpl{}
}

func (m *CommentMapperImpl) ToModel(c *comment.Comment) (*models.CommentModel, error) {
	attachments, err := marshalJSON(c.Attachments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comment attachments: %w", err)
	}
	return &models.CommentModel{
		ID:            c.ID(),
		TenantID:      c.TenantID(),
		ItemType:      c.ItemType().String(),
		ItemID:        c.ItemID(),
		AuthorID:      c.AuthorID(),
		AuthorName:    c.AuthorName(),
		AuthorContact: c.AuthorContact(),
		Text:          c.Text(),
		Attachments:   attachments,
		IsInternal:    c.IsInternal(),
		IsRead:        c.IsRead(),
		ReadByID:      c.ReadByID(),
		ReadAt:        c.ReadAt(),
		CreatedAt:     c.CreatedAt(),
	}, nil
}

// ToDomain expects responses already ordered oldest-first.
func (m *CommentMapperImpl) ToDomain(model *models.CommentModel, responses []models.CommentResponseModel) (*comment.Comment, error) {
	itemType, err := vo.NewKind(model.ItemType)
	if err != nil {
		return nil, fmt.Errorf("invalid item type on comment %d: %w", model.ID, err)
	}

	var attachments []string
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal comment attachments (id=%d): %w", model.ID, err)
		}
	}

	list := make([]*comment.Response, 0, len(responses))
	for i := range responses {
		list = append(list, m.ResponseToDomain(&responses[i]))
	}

	return comment.ReconstructComment(
		model.ID,
		model.TenantID,
		itemType,
		model.ItemID,
		model.AuthorID,
		model.AuthorName,
		model.AuthorContact,
		model.Text,
		attachments,
		model.IsInternal,
		model.IsRead,
		model.ReadByID,
		utcPtr(model.ReadAt),
		model.CreatedAt.UTC(),
		list,
	), nil
}

func (m *CommentMapperImpl) ResponseToModel(r *comment.Response) *models.CommentResponseModel {
	return &models.CommentResponseModel{
		ID:         r.ID(),
		TenantID:   r.TenantID(),
		CommentID:  r.CommentID(),
		AuthorID:   r.AuthorID(),
		AuthorName: r.AuthorName(),
		Text:       r.Text(),
		CreatedAt:  r.CreatedAt(),
	}
}

func (m *CommentMapperImpl) ResponseToDomain(model *models.CommentResponseModel) *comment.Response {
	return comment.ReconstructResponse(
		model.ID,
		model.TenantID,
		model.CommentID,
		model.AuthorID,
		model.AuthorName,
		model.Text,
		model.CreatedAt.UTC(),
	)
}
