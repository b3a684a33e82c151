package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campus-books-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAdmissionSvc struct{ mock.Mock }

func (m *mockAdmissionSvc) Submit(ctx context.Context, req domain.CreateAdmissionRequest) (*domain.Admission, error) {
	args := m.Called(ctx, req)
	if a, _ := args.Get(0).(*domain.Admission); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAdmissionSvc) ListByStudent(ctx context.Context, email string) ([]domain.Admission, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]domain.Admission), args.Error(1)
}

func admissionBody(t *testing.T, email string) []byte {
	return mustJSON(t, domain.CreateAdmissionRequest{
		StudentEmail:  email,
		CollegeID:     "01J00000000000000000000000",
		CandidateName: "Alice",
		Subject:       "Physics",
	})
}

func TestSubmitAdmission_Owner(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockAdmissionSvc{}
	svc.On("Submit", mock.Anything, mock.MatchedBy(func(req domain.CreateAdmissionRequest) bool {
		return req.StudentEmail == "alice@example.com"
	})).Return(&domain.Admission{StudentEmail: "alice@example.com"}, nil)
	h := NewAdmissionHandler(svc)

	r := bearerReq(t, p, http.MethodPost, "/admission", "alice@example.com", admissionBody(t, "alice@example.com"))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Submit), rr, r)

	assert.Equal(t, http.StatusCreated, rr.Code)
	svc.AssertExpectations(t)
}

func TestSubmitAdmission_OtherUserForbidden(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockAdmissionSvc{}
	h := NewAdmissionHandler(svc)

	r := bearerReq(t, p, http.MethodPost, "/admission", "mallory@example.com", admissionBody(t, "alice@example.com"))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Submit), rr, r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, ErrorEnvelope{Error: true, Message: "forbidden access"}, decodeErrorEnvelope(t, rr))
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmitAdmission_NoToken(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewAdmissionHandler(&mockAdmissionSvc{})

	r := httptest.NewRequest(http.MethodPost, "/admission", nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Submit), rr, r)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSubmitAdmission_Duplicate(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockAdmissionSvc{}
	svc.On("Submit", mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)
	h := NewAdmissionHandler(svc)

	r := bearerReq(t, p, http.MethodPost, "/admission", "alice@example.com", admissionBody(t, "alice@example.com"))
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.Submit), rr, r)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestListAdmissions(t *testing.T) {
	svc := &mockAdmissionSvc{}
	svc.On("ListByStudent", mock.Anything, "alice@example.com").Return([]domain.Admission{{CollegeID: "c1"}}, nil)
	h := NewAdmissionHandler(svc)

	r := withChiParam(httptest.NewRequest(http.MethodGet, "/admission/alice@example.com", nil), "email", "alice@example.com")
	rr := httptest.NewRecorder()
	h.ListByStudent(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}
