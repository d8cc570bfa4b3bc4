package review

import (
	"sync"

	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/TheCodingDen/projects-bot/internal/db/repositories"
	"go.uber.org/zap"
)

// Store is the cache-plus-persistence facade for submission aggregates.
// The unit of caching and locking is one submission: callers must hold the
// submission's gate (Lock) around any fetch-mutate-save sequence so that a
// partially mutated aggregate is never observable by a second caller.
type Store struct {
	submissions repositories.SubmissionRepository
	votes       repositories.VoteRepository
	drafts      repositories.DraftRepository

	gate   *Gate
	logger *zap.SugaredLogger

	mu    sync.Mutex
	cache map[string]*models.Submission
}

func NewStore(
	submissions repositories.SubmissionRepository,
	votes repositories.VoteRepository,
	drafts repositories.DraftRepository,
	logger *zap.SugaredLogger,
) *Store {
	return &Store{
		submissions: submissions,
		votes:       votes,
		drafts:      drafts,
		gate:        NewGate(),
		logger:      logger,
		cache:       make(map[string]*models.Submission),
	}
}

// Lock acquires the submission's gate and returns the release function.
func (s *Store) Lock(submissionID string) func() {
	return s.gate.Acquire(submissionID)
}

// Fetch loads the full submission aggregate, from cache when available.
func (s *Store) Fetch(submissionID string) (*models.Submission, error) {
	s.mu.Lock()
	cached, ok := s.cache[submissionID]
	s.mu.Unlock()

	if ok {
		return cached, nil
	}

	submission, err := s.submissions.GetOne(submissionID)
	if err != nil {
		return nil, &ExternalOperationError{Step: "load submission", Err: err}
	}

	s.put(submission)
	return submission, nil
}

// FetchByMessageID resolves a submission from its review message.
func (s *Store) FetchByMessageID(messageID string) (*models.Submission, error) {
	s.mu.Lock()
	for _, cached := range s.cache {
		if cached.MessageID == messageID {
			s.mu.Unlock()
			return cached, nil
		}
	}
	s.mu.Unlock()

	submission, err := s.submissions.GetOneByMessageID(messageID)
	if err != nil {
		return nil, &ExternalOperationError{Step: "load submission", Err: err}
	}

	s.put(submission)
	return submission, nil
}

// FetchByReviewThreadID resolves a submission from its review thread,
// which is how slash commands locate the submission they run inside of.
func (s *Store) FetchByReviewThreadID(reviewThreadID string) (*models.Submission, error) {
	s.mu.Lock()
	for _, cached := range s.cache {
		if cached.ReviewThreadID == reviewThreadID {
			s.mu.Unlock()
			return cached, nil
		}
	}
	s.mu.Unlock()

	submission, err := s.submissions.GetOneByReviewThreadID(reviewThreadID)
	if err != nil {
		return nil, &ExternalOperationError{Step: "load submission", Err: err}
	}

	s.put(submission)
	return submission, nil
}

// FetchOpenByAuthor returns the author's submissions still in review.
// Cached aggregates win over freshly loaded rows so callers never see two
// copies of the same submission.
func (s *Store) FetchOpenByAuthor(authorID string) ([]*models.Submission, error) {
	loaded, err := s.submissions.GetManyOpenByAuthor(authorID)
	if err != nil {
		return nil, &ExternalOperationError{Step: "load submissions", Err: err}
	}

	submissions := make([]*models.Submission, 0, len(loaded))

	for _, submission := range loaded {
		s.mu.Lock()
		cached, ok := s.cache[submission.ID]
		s.mu.Unlock()

		if ok {
			submissions = append(submissions, cached)
			continue
		}

		s.put(submission)
		submissions = append(submissions, submission)
	}

	return submissions, nil
}

// Create persists a new submission and caches it.
func (s *Store) Create(submission *models.Submission) error {
	created, err := s.submissions.Create(submission)
	if err != nil {
		return &ExternalOperationError{Step: "create submission", Err: err}
	}

	*submission = *created
	s.put(submission)
	return nil
}

// Save writes the aggregate's details back and refreshes the cache. A
// failed write evicts the aggregate so the cache never serves in-memory
// mutations the database rejected.
func (s *Store) Save(submission *models.Submission) error {
	if _, err := s.submissions.Update(submission); err != nil {
		s.Evict(submission.ID)
		return &ExternalOperationError{Step: "save submission", Err: err}
	}

	s.put(submission)
	return nil
}

// AppendVote persists a single vote record.
func (s *Store) AppendVote(vote models.Vote) error {
	if _, err := s.votes.Create(&vote); err != nil {
		return &ExternalOperationError{Step: "persist vote", Err: err}
	}
	return nil
}

// DeleteVote removes a single vote record. Used both for toggles and for
// compensation after a failed action sequence.
func (s *Store) DeleteVote(submissionID, voterID string, voteType models.VoteType) error {
	if err := s.votes.Delete(submissionID, voterID, voteType); err != nil {
		return &ExternalOperationError{Step: "remove vote", Err: err}
	}
	return nil
}

// ClearPauseVotes removes all stored PAUSE votes for a submission.
func (s *Store) ClearPauseVotes(submissionID string) error {
	if err := s.votes.DeleteManyByType(submissionID, models.VoteTypePause); err != nil {
		return &ExternalOperationError{Step: "remove pause votes", Err: err}
	}
	return nil
}

// AppendDraft persists a draft and attaches it to the cached aggregate.
func (s *Store) AppendDraft(submission *models.Submission, draft models.Draft) error {
	created, err := s.drafts.Create(&draft)
	if err != nil {
		return &ExternalOperationError{Step: "persist draft", Err: err}
	}

	submission.Drafts = append(submission.Drafts, *created)
	return nil
}

// Remove marks a completed submission deleted and evicts it. This is the
// out-of-band administrative path; it does not go through the state
// machine.
func (s *Store) Remove(submissionID string) error {
	if err := s.submissions.MarkDeleted(submissionID); err != nil {
		return &ExternalOperationError{Step: "mark submission deleted", Err: err}
	}

	s.Evict(submissionID)
	return nil
}

// Evict drops a submission from the cache without touching persistence.
func (s *Store) Evict(submissionID string) {
	s.mu.Lock()
	delete(s.cache, submissionID)
	s.mu.Unlock()
}

func (s *Store) put(submission *models.Submission) {
	s.mu.Lock()
	s.cache[submission.ID] = submission
	s.mu.Unlock()
}
