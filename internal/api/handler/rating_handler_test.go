package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stayinn/rating-gateway/internal/api/middleware"
	"github.com/stayinn/rating-gateway/internal/core/domain"
	"github.com/stayinn/rating-gateway/internal/core/ports"
	"github.com/stayinn/rating-gateway/internal/infrastructure/feedback"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubLookup struct {
	acc   *domain.Accommodation
	err   error
	calls int
}

func (l *stubLookup) GetAccommodationByID(_ context.Context, id string) (*domain.Accommodation, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	clone := *l.acc
	clone.ID = id
	return &clone, nil
}

type stubSubmitter struct {
	calls []domain.RatingSubmission
	err   error
}

func (s *stubSubmitter) AddRatingAccommodation(_ context.Context, sub domain.RatingSubmission) (*domain.Rate, error) {
	s.calls = append(s.calls, sub)
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Rate{ID: "r-1", Rate: sub.Rate}, nil
}

type stubAttempts struct {
	inserted []*domain.RatingAttempt
}

func (a *stubAttempts) Insert(_ context.Context, at *domain.RatingAttempt) error {
	a.inserted = append(a.inserted, at)
	return nil
}

type stubDrafts struct {
	values  map[string]int
	loadErr error
}

func newStubDrafts() *stubDrafts {
	return &stubDrafts{values: make(map[string]int)}
}

func (d *stubDrafts) Load(_ context.Context, username, accommodationID string) (int, error) {
	if d.loadErr != nil {
		return 0, d.loadErr
	}
	return d.values[username+"/"+accommodationID], nil
}

func (d *stubDrafts) Save(_ context.Context, username, accommodationID string, rate int) error {
	d.values[username+"/"+accommodationID] = rate
	return nil
}

type stubToasts struct {
	queued map[string]*feedback.Recorder
}

func newStubToasts() *stubToasts {
	return &stubToasts{queued: make(map[string]*feedback.Recorder)}
}

func (s *stubToasts) For(_ context.Context, username string) ports.Notifier {
	if _, ok := s.queued[username]; !ok {
		s.queued[username] = feedback.NewRecorder()
	}
	return s.queued[username]
}

func (s *stubToasts) Drain(_ context.Context, username string) ([]feedback.Toast, error) {
	r, ok := s.queued[username]
	if !ok {
		return nil, nil
	}
	delete(s.queued, username)
	return r.Toasts(), nil
}

type fixture struct {
	lookup    *stubLookup
	submitter *stubSubmitter
	attempts  *stubAttempts
	drafts    *stubDrafts
	toasts    *stubToasts
	handler   *RatingHandler
}

func newFixture() *fixture {
	f := &fixture{
		lookup:    &stubLookup{acc: &domain.Accommodation{Name: "Sea View", OwnerID: "host-9"}},
		submitter: &stubSubmitter{},
		attempts:  &stubAttempts{},
		drafts:    newStubDrafts(),
		toasts:    newStubToasts(),
	}
	f.handler = NewRatingHandler(f.lookup, f.submitter, f.attempts, f.drafts, f.toasts, zerolog.Nop())
	return f
}

func newGuestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ClaimsKey, domain.JwtPayload{Role: domain.RoleGuest, Username: "guest1"})
	c.Set(middleware.TokenKey, "tok")
	c.SetParamNames("accommodation_id")
	c.SetParamValues("acc-1")
	return c, rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func TestRatingHandler_View_Success(t *testing.T) {
	f := newFixture()
	f.drafts.values["guest1/acc-1"] = 3
	c, rec := newGuestContext(http.MethodGet, "/v1/accommodations/acc-1/rating?host_id=host-9", "")

	if err := f.handler.View(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decode[ratingViewResponse](t, rec)
	if resp.Accommodation == nil || resp.Accommodation.ID != "acc-1" || resp.Accommodation.Name != "Sea View" {
		t.Fatalf("unexpected accommodation: %+v", resp.Accommodation)
	}
	if resp.HostID != "host-9" || resp.Rate != 3 {
		t.Fatalf("unexpected view: %+v", resp)
	}
}

func TestRatingHandler_View_NotFound(t *testing.T) {
	f := newFixture()
	f.lookup.err = domain.ErrAccommodationNotFound
	c, _ := newGuestContext(http.MethodGet, "/v1/accommodations/acc-1/rating", "")

	if err := f.handler.View(c); !errors.Is(err, domain.ErrAccommodationNotFound) {
		t.Fatalf("expected ErrAccommodationNotFound, got %v", err)
	}
}

func TestRatingHandler_View_DraftStoreDownFallsBackToZero(t *testing.T) {
	f := newFixture()
	f.drafts.loadErr = errors.New("redis down")
	c, rec := newGuestContext(http.MethodGet, "/v1/accommodations/acc-1/rating", "")

	if err := f.handler.View(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[ratingViewResponse](t, rec); resp.Rate != 0 {
		t.Fatalf("expected default rate 0, got %d", resp.Rate)
	}
}

func TestRatingHandler_View_Unauthenticated(t *testing.T) {
	f := newFixture()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := f.handler.View(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if f.lookup.calls != 0 {
		t.Fatalf("expected no upstream call")
	}
}

// ---------------------------------------------------------------------------
// SaveDraft
// ---------------------------------------------------------------------------

func TestRatingHandler_SaveDraft(t *testing.T) {
	f := newFixture()
	c, rec := newGuestContext(http.MethodPut, "/v1/accommodations/acc-1/rating", `{"rate":4}`)

	if err := f.handler.SaveDraft(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if f.drafts.values["guest1/acc-1"] != 4 {
		t.Fatalf("expected draft 4, got %v", f.drafts.values)
	}
	if resp := decode[draftResponse](t, rec); resp.Rate != 4 || resp.AccommodationID != "acc-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRatingHandler_SaveDraft_MissingRate(t *testing.T) {
	f := newFixture()
	c, _ := newGuestContext(http.MethodPut, "/v1/accommodations/acc-1/rating", `{}`)

	err := f.handler.SaveDraft(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "rate is required") {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestRatingHandler_SaveDraft_InvalidPayload(t *testing.T) {
	f := newFixture()
	c, _ := newGuestContext(http.MethodPut, "/v1/accommodations/acc-1/rating", `not-json`)

	err := f.handler.SaveDraft(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestRatingHandler_Submit_Success(t *testing.T) {
	f := newFixture()
	f.drafts.values["guest1/acc-1"] = 4
	c, rec := newGuestContext(http.MethodPost, "/v1/accommodations/acc-1/rating", `{"host_id":"host-9"}`)

	if err := f.handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	want := domain.RatingSubmission{IDAccommodation: "acc-1", IDHost: "host-9", Rate: 4}
	if len(f.submitter.calls) != 1 || f.submitter.calls[0] != want {
		t.Fatalf("expected one call with %+v, got %+v", want, f.submitter.calls)
	}

	resp := decode[submitRatingResponse](t, rec)
	if resp.NavigateTo == nil || *resp.NavigateTo != "" {
		t.Fatalf("expected navigation to root, got %v", resp.NavigateTo)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Level != feedback.LevelSuccess {
		t.Fatalf("expected one success toast, got %+v", resp.Notifications)
	}
	if _, ok := f.toasts.queued["guest1"]; ok {
		t.Fatalf("toast delivered in the response must not be queued again")
	}
	if len(f.attempts.inserted) != 1 || f.attempts.inserted[0].Outcome != domain.OutcomeSucceeded {
		t.Fatalf("expected audited success, got %+v", f.attempts.inserted)
	}
}

func TestRatingHandler_Submit_MissingHostIsSilent(t *testing.T) {
	f := newFixture()
	c, rec := newGuestContext(http.MethodPost, "/v1/accommodations/acc-1/rating", `{}`)

	if err := f.handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(f.submitter.calls) != 0 || len(f.attempts.inserted) != 0 {
		t.Fatalf("expected no submission, got %+v", f.submitter.calls)
	}

	resp := decode[submitRatingResponse](t, rec)
	if len(resp.Notifications) != 0 || resp.NavigateTo != nil {
		t.Fatalf("expected no feedback, got %+v", resp)
	}
	if _, ok := f.toasts.queued["guest1"]; ok && len(f.toasts.queued["guest1"].Toasts()) != 0 {
		t.Fatalf("expected no queued toast")
	}
}

func TestRatingHandler_Submit_UpstreamFailure(t *testing.T) {
	f := newFixture()
	f.drafts.values["guest1/acc-1"] = 2
	f.submitter.err = domain.ErrUpstreamUnavailable
	c, rec := newGuestContext(http.MethodPost, "/v1/accommodations/acc-1/rating", `{"host_id":"host-9"}`)

	if err := f.handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	resp := decode[submitRatingResponse](t, rec)
	if resp.NavigateTo != nil {
		t.Fatalf("expected no navigation, got %q", *resp.NavigateTo)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Level != feedback.LevelError {
		t.Fatalf("expected one error toast, got %+v", resp.Notifications)
	}
	if resp.Rate != 2 || f.drafts.values["guest1/acc-1"] != 2 {
		t.Fatalf("expected rate to stay 2, got %d", resp.Rate)
	}
	if len(f.attempts.inserted) != 1 || f.attempts.inserted[0].Outcome != domain.OutcomeFailed {
		t.Fatalf("expected audited failure, got %+v", f.attempts.inserted)
	}
}

func TestRatingHandler_Submit_GuestLeftQueuesToastOnce(t *testing.T) {
	f := newFixture()
	f.drafts.values["guest1/acc-1"] = 5
	c, rec := newGuestContext(http.MethodPost, "/v1/accommodations/acc-1/rating", `{"host_id":"host-9"}`)

	ctx, cancel := context.WithCancel(c.Request().Context())
	cancel()
	c.SetRequest(c.Request().WithContext(ctx))

	if err := f.handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	queued := f.toasts.queued["guest1"]
	if queued == nil {
		t.Fatalf("expected toast queued for later delivery")
	}
	if got := queued.Toasts(); len(got) != 1 || got[0] != (feedback.Toast{Level: feedback.LevelSuccess, Message: "Rating added successfully"}) {
		t.Fatalf("expected exactly one success toast queued, got %+v", got)
	}
}

// ---------------------------------------------------------------------------
// Notifications
// ---------------------------------------------------------------------------

func TestNotificationHandler_List(t *testing.T) {
	toasts := newStubToasts()
	toasts.For(context.Background(), "guest1").Success("Rating added successfully")
	h := NewNotificationHandler(toasts)

	c, rec := newGuestContext(http.MethodGet, "/v1/notifications", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode[notificationsResponse](t, rec)
	if len(resp.Notifications) != 1 || resp.Notifications[0].Message != "Rating added successfully" {
		t.Fatalf("unexpected notifications: %+v", resp.Notifications)
	}

	c, rec = newGuestContext(http.MethodGet, "/v1/notifications", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decode[notificationsResponse](t, rec); resp.Notifications == nil || len(resp.Notifications) != 0 {
		t.Fatalf("expected drained queue to render [], got %s", rec.Body.String())
	}
}
