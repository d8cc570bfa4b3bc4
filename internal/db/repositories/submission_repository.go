package repositories

import (
	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/go-pg/pg/v10"
)

type submissionRepository struct {
	repository
}

type SubmissionRepository interface {
	Create(request *models.Submission) (*models.Submission, error)
	Update(request *models.Submission) (*models.Submission, error)
	GetOne(submissionID string) (*models.Submission, error)
	GetOneByMessageID(messageID string) (*models.Submission, error)
	GetOneByReviewThreadID(reviewThreadID string) (*models.Submission, error)
	GetManyByState(state ...models.SubmissionState) ([]*models.Submission, error)
	GetManyBySourceLink(sourceLink string) ([]*models.Submission, error)
	GetManyOpenByAuthor(authorID string) ([]*models.Submission, error)
	MarkDeleted(submissionID string) error
}

func NewSubmissionRepository(db *pg.DB) SubmissionRepository {
	return &submissionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *submissionRepository) Create(request *models.Submission) (*models.Submission, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *submissionRepository) Update(request *models.Submission) (*models.Submission, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *submissionRepository) GetOne(submissionID string) (*models.Submission, error) {
	submission := &models.Submission{}

	err := r.db.Model(submission).
		Relation("Votes").
		Relation("Drafts").
		Where("id = ?", submissionID).
		Select()

	return submission, err
}

func (r *submissionRepository) GetOneByMessageID(messageID string) (*models.Submission, error) {
	submission := &models.Submission{}

	err := r.db.Model(submission).
		Relation("Votes").
		Relation("Drafts").
		Where("message_id = ?", messageID).
		Select()

	return submission, err
}

func (r *submissionRepository) GetOneByReviewThreadID(reviewThreadID string) (*models.Submission, error) {
	submission := &models.Submission{}

	err := r.db.Model(submission).
		Relation("Votes").
		Relation("Drafts").
		Where("review_thread_id = ?", reviewThreadID).
		Select()

	return submission, err
}

func (r *submissionRepository) GetManyByState(state ...models.SubmissionState) ([]*models.Submission, error) {
	submissions := make([]*models.Submission, 0)

	err := r.db.Model(&submissions).
		Relation("Votes").
		Relation("Drafts").
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			for _, s := range state {
				q = q.WhereOr("state = ?", s)
			}
			return q, nil
		}).
		OrderExpr("submitted_at ASC").
		Select()

	return submissions, err
}

func (r *submissionRepository) GetManyBySourceLink(sourceLink string) ([]*models.Submission, error) {
	submissions := make([]*models.Submission, 0)

	err := r.db.Model(&submissions).
		Where("source_link = ?", sourceLink).
		Where("state != ?", models.SubmissionStateDeleted).
		Select()

	return submissions, err
}

func (r *submissionRepository) GetManyOpenByAuthor(authorID string) ([]*models.Submission, error) {
	submissions := make([]*models.Submission, 0)

	err := r.db.Model(&submissions).
		Relation("Votes").
		Relation("Drafts").
		Where("author_id = ?", authorID).
		Where("state NOT IN (?)", pg.In([]models.SubmissionState{
			models.SubmissionStateAccepted,
			models.SubmissionStateDenied,
			models.SubmissionStateDeleted,
		})).
		Select()

	return submissions, err
}

func (r *submissionRepository) MarkDeleted(submissionID string) error {
	_, err := r.db.Model(&models.Submission{}).
		Set("state = ?", models.SubmissionStateDeleted).
		Where("id = ?", submissionID).
		Update()

	return err
}
