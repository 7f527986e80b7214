package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"talent-rank/internal/domain/candidate"
	"talent-rank/internal/domain/extraction"
	"talent-rank/internal/parsing"
)

type recordingCandidateRepo struct {
	created []candidate.Profile
	err     error
}

func (m *recordingCandidateRepo) Create(_ context.Context, p candidate.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, p)
	return nil
}

func (m *recordingCandidateRepo) GetByID(context.Context, uuid.UUID) (candidate.Profile, error) {
	return candidate.Profile{}, candidate.ErrNotFound
}

func (m *recordingCandidateRepo) List(context.Context) ([]candidate.Profile, error) {
	return m.created, nil
}

func (m *recordingCandidateRepo) ListByIDs(context.Context, []uuid.UUID) ([]candidate.Profile, error) {
	return m.created, nil
}

func (m *recordingCandidateRepo) Delete(context.Context, uuid.UUID) error { return nil }

const ingestResume = `John Doe
john.doe@example.com

Skills: Go, PostgreSQL, Docker

Experience:

Senior Software Engineer at Acme Corp (2019 - 2023)
- Built microservices with Go and PostgreSQL

Software Engineer at StartupXYZ (2016 - 2019)
- Developed REST APIs
`

func newTestCandidateUsecase(repo candidate.Repository, cache RankingCache) *Candidate {
	return NewCandidateUsecase(
		repo,
		parsing.NewParser(nil),
		extraction.NewExtractor(nil, 1, nil),
		cache,
		nil,
	)
}

func TestCandidateUsecase_Ingest_EnrichesAndStores(t *testing.T) {
	repo := &recordingCandidateRepo{}
	cache := newMockCache()
	cache.data["ranking:stale"] = []byte(`{}`)

	uc := newTestCandidateUsecase(repo, cache)

	res, err := uc.Ingest(context.Background(), IngestCandidateInput{ResumeText: ingestResume})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 stored profile, got %d", len(repo.created))
	}
	p := res.Profile
	if p.Name != "John Doe" {
		t.Fatalf("expected parsed name, got %q", p.Name)
	}
	if p.Email != "john.doe@example.com" {
		t.Fatalf("expected parsed email, got %q", p.Email)
	}
	if len(p.Skills) == 0 {
		t.Fatalf("expected extracted skills")
	}
	if p.InferredSeniority == "" {
		t.Fatalf("expected inferred seniority")
	}
	if p.ID == uuid.Nil {
		t.Fatalf("expected assigned id")
	}
	if len(cache.data) != 0 {
		t.Fatalf("expected ranking cache flushed, %d entries left", len(cache.data))
	}
}

func TestCandidateUsecase_Ingest_EmptyResume(t *testing.T) {
	uc := newTestCandidateUsecase(&recordingCandidateRepo{}, newMockCache())

	_, err := uc.Ingest(context.Background(), IngestCandidateInput{ResumeText: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCandidateUsecase_Ingest_RepoFailure(t *testing.T) {
	repo := &recordingCandidateRepo{err: errors.New("db down")}
	uc := newTestCandidateUsecase(repo, newMockCache())

	_, err := uc.Ingest(context.Background(), IngestCandidateInput{ResumeText: ingestResume})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestCandidateUsecase_Delete_NotFound(t *testing.T) {
	uc := newTestCandidateUsecase(&failingDeleteRepo{}, newMockCache())

	err := uc.Delete(context.Background(), uuid.New())
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

type failingDeleteRepo struct {
	recordingCandidateRepo
}

func (f *failingDeleteRepo) Delete(context.Context, uuid.UUID) error {
	return candidate.ErrNotFound
}
