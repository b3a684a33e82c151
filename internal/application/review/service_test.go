package review

import (
	"context"
	"errors"
	"testing"

	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockCollegeStore struct{ mock.Mock }

func (m *mockCollegeStore) Scan(ctx context.Context) ([]domain.College, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.College), args.Error(1)
}
func (m *mockCollegeStore) AppendReview(ctx context.Context, collegeID string, rv domain.Review) (*domain.College, error) {
	args := m.Called(ctx, collegeID, rv)
	if c, _ := args.Get(0).(*domain.College); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAdmissionStore struct{ mock.Mock }

func (m *mockAdmissionStore) MarkReviewed(ctx context.Context, email, collegeID string) (bool, error) {
	args := m.Called(ctx, email, collegeID)
	return args.Bool(0), args.Error(1)
}

// memAdmissions is an in-memory admission table keyed by email+college.
type memAdmissions map[string]*domain.Admission

func (m memAdmissions) MarkReviewed(_ context.Context, email, collegeID string) (bool, error) {
	a, ok := m[email+"|"+collegeID]
	if !ok {
		return false, nil
	}
	a.Reviewed = true
	return true, nil
}

// memColleges appends reviews to in-memory colleges.
type memColleges map[string]*domain.College

func (m memColleges) Scan(context.Context) ([]domain.College, error) {
	out := []domain.College{}
	for _, c := range m {
		out = append(out, *c)
	}
	return out, nil
}

func (m memColleges) AppendReview(_ context.Context, collegeID string, rv domain.Review) (*domain.College, error) {
	c, ok := m[collegeID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Reviews = append(c.Reviews, rv)
	cp := *c
	return &cp, nil
}

func sampleReview() domain.Review {
	return domain.Review{ReviewerName: "A", ReviewerEmail: "a@x.com", Rating: 4, Text: "great"}
}

// --- Append tests ---

func TestAppend_FlipsMatchingAdmission(t *testing.T) {
	cid := id.New()
	colleges := memColleges{cid: {CollegeID: cid, Name: "C1", Reviews: []domain.Review{{Rating: 2}}}}
	adm := &domain.Admission{StudentEmail: "a@x.com", CollegeID: cid}
	admissions := memAdmissions{"a@x.com|" + cid: adm}

	res, err := NewService(colleges, admissions, nil).Append(context.Background(), cid, sampleReview())
	require.NoError(t, err)
	assert.True(t, adm.Reviewed)
	assert.True(t, res.AdmissionUpdated)
	assert.Len(t, colleges[cid].Reviews, 2)
	assert.Equal(t, 3.0, res.College.AverageRating)
	assert.False(t, colleges[cid].Reviews[1].CreatedAt.IsZero())
}

func TestAppend_NoMatchingAdmissionStillSucceeds(t *testing.T) {
	cid := id.New()
	colleges := memColleges{cid: {CollegeID: cid}}

	res, err := NewService(colleges, memAdmissions{}, nil).Append(context.Background(), cid, sampleReview())
	require.NoError(t, err)
	assert.False(t, res.AdmissionUpdated)
	assert.Len(t, colleges[cid].Reviews, 1)
}

func TestAppend_MalformedID(t *testing.T) {
	cs := &mockCollegeStore{}
	_, err := NewService(cs, &mockAdmissionStore{}, nil).Append(context.Background(), "C1", sampleReview())
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	cs.AssertNotCalled(t, "AppendReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppend_UnknownCollege_SkipsAdmission(t *testing.T) {
	cid := id.New()
	cs := &mockCollegeStore{}
	cs.On("AppendReview", mock.Anything, cid, mock.Anything).Return(nil, domain.ErrNotFound)
	as := &mockAdmissionStore{}

	_, err := NewService(cs, as, nil).Append(context.Background(), cid, sampleReview())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	as.AssertNotCalled(t, "MarkReviewed", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppend_SecondWriteFails_ReportsPartialFailure(t *testing.T) {
	cid := id.New()
	cs := &mockCollegeStore{}
	cs.On("AppendReview", mock.Anything, cid, mock.Anything).
		Return(&domain.College{CollegeID: cid, Reviews: []domain.Review{sampleReview()}}, nil)
	as := &mockAdmissionStore{}
	as.On("MarkReviewed", mock.Anything, "a@x.com", cid).Return(false, errors.New("throttled"))

	res, err := NewService(cs, as, nil).Append(context.Background(), cid, sampleReview())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPartialFailure))
	require.NotNil(t, res)
	assert.False(t, res.AdmissionUpdated)
	assert.Len(t, res.College.Reviews, 1)
}

// --- List tests ---

func TestList_FlattensWithCollegeName(t *testing.T) {
	cs := &mockCollegeStore{}
	cs.On("Scan", mock.Anything).Return([]domain.College{
		{CollegeID: "c2", Name: "Beta", Reviews: []domain.Review{{ReviewerName: "z"}}},
		{CollegeID: "c1", Name: "Alpha", Reviews: []domain.Review{{ReviewerName: "x"}, {ReviewerName: "y"}}},
		{CollegeID: "c3", Name: "Empty"},
	}, nil)

	got, err := NewService(cs, &mockAdmissionStore{}, nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Alpha", got[0].CollegeName)
	assert.Equal(t, "x", got[0].ReviewerName)
	assert.Equal(t, "y", got[1].ReviewerName)
	assert.Equal(t, "Beta", got[2].CollegeName)
}
