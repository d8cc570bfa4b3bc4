package repositories

import (
	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/go-pg/pg/v10"
)

type draftRepository struct {
	repository
}

type DraftRepository interface {
	Create(request *models.Draft) (*models.Draft, error)
	GetManyBySubmission(submissionID string) ([]*models.Draft, error)
}

func NewDraftRepository(db *pg.DB) DraftRepository {
	return &draftRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *draftRepository) Create(request *models.Draft) (*models.Draft, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	draft := &models.Draft{}

	err = r.db.Model(draft).
		Where("id = ?", request.ID).
		Select()

	return draft, err
}

func (r *draftRepository) GetManyBySubmission(submissionID string) ([]*models.Draft, error) {
	drafts := make([]*models.Draft, 0)

	err := r.db.Model(&drafts).
		Where("submission_id = ?", submissionID).
		OrderExpr("created_at DESC").
		Select()

	return drafts, err
}
