package repositories

import (
	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Create(request *models.Vote) (*models.Vote, error)
	Delete(submissionID, voterID string, voteType models.VoteType) error
	DeleteManyByType(submissionID string, voteType models.VoteType) error
	GetManyBySubmission(submissionID string) ([]*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Create(request *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	vote := &models.Vote{}

	err = r.db.Model(vote).
		Where("id = ?", request.ID).
		Select()

	return vote, err
}

func (r *voteRepository) Delete(submissionID, voterID string, voteType models.VoteType) error {
	_, err := r.db.Model(&models.Vote{}).
		Where("submission_id = ?", submissionID).
		Where("voter_id = ?", voterID).
		Where("type = ?", voteType).
		Delete()

	return err
}

func (r *voteRepository) DeleteManyByType(submissionID string, voteType models.VoteType) error {
	_, err := r.db.Model(&models.Vote{}).
		Where("submission_id = ?", submissionID).
		Where("type = ?", voteType).
		Delete()

	return err
}

func (r *voteRepository) GetManyBySubmission(submissionID string) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("submission_id = ?", submissionID).
		Select()

	return votes, err
}
