package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevhq/scoring/pkg/auth"
	"github.com/codevhq/scoring/pkg/profile"
	"github.com/codevhq/scoring/pkg/scoring"
	"github.com/codevhq/scoring/pkg/security/jwt"
)

type fakeScoreUC struct {
	res   scoring.Result
	err   error
	calls int
}

func (f *fakeScoreUC) Score(_ context.Context, actorID, codevID uuid.UUID) (scoring.Result, error) {
	f.calls++
	return f.res, f.err
}

// newScoreApp mounts the handler behind a stub that injects the caller
// identity the way the JWT middleware would.
func newScoreApp(uc scoring.UseCase, actorID string) *fiber.App {
	app := fiber.New()
	h := NewScoreHandler(uc)
	app.Get("/api/v1/profiles/:id/points", func(c *fiber.Ctx) error {
		if actorID != "" {
			c.Locals("userId", actorID)
		}
		return c.Next()
	}, h.GetPoints)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestGetPoints_Success(t *testing.T) {
	actor := uuid.New()
	uc := &fakeScoreUC{res: scoring.Result{
		Success:              true,
		TotalPoints:          24,
		MaxPossiblePoints:    127,
		CompletionPercentage: 19,
		PointsCount:          1,
		Points:               []scoring.PointRecord{{ID: uuid.New(), CodevID: actor, Category: "work_experiences", Points: 24, CreatedAt: time.Now().UTC()}},
		Breakdown:            []scoring.BreakdownEntry{{CodevID: actor, Category: "work_experiences", Points: 24}},
		CompletionDetails:    map[string]scoring.CategoryDetail{},
	}}
	app := newScoreApp(uc, actor.String())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+actor.String()+"/points", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(24), body["totalPoints"])
	assert.Equal(t, float64(127), body["maxPossiblePoints"])
	assert.Equal(t, 1, uc.calls)
}

func TestGetPoints_MalformedIDRejectedBeforeUseCase(t *testing.T) {
	uc := &fakeScoreUC{}
	app := newScoreApp(uc, uuid.New().String())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/not-a-uuid/points", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, uc.calls, "nothing may run for a malformed id")

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "UUID")
}

func TestGetPoints_MissingIdentity(t *testing.T) {
	uc := &fakeScoreUC{}
	app := newScoreApp(uc, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+uuid.New().String()+"/points", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, uc.calls)
}

func TestGetPoints_Forbidden(t *testing.T) {
	uc := &fakeScoreUC{err: scoring.ErrForbidden}
	app := newScoreApp(uc, uuid.New().String())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+uuid.New().String()+"/points", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetPoints_ProfileNotFound(t *testing.T) {
	uc := &fakeScoreUC{err: profile.ErrNotFound}
	app := newScoreApp(uc, uuid.New().String())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+uuid.New().String()+"/points", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetPoints_DatastoreFailure(t *testing.T) {
	uc := &fakeScoreUC{err: errors.New("insert points: connection reset")}
	app := newScoreApp(uc, uuid.New().String())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+uuid.New().String()+"/points", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "failed to compute profile score", body["error"])
	assert.Contains(t, body["details"], "connection reset")
}

func TestGetPoints_BehindJWTMiddleware(t *testing.T) {
	const secret, issuer = "test-secret", "codev-scoring"
	actor := uuid.New()
	uc := &fakeScoreUC{res: scoring.Result{Success: true}}

	app := fiber.New()
	app.Get("/api/v1/profiles/:id/points", jwt.NewAuthMiddleware(secret, issuer), NewScoreHandler(uc).GetPoints)

	// No session at all: rejected before any role resolution.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+actor.String()+"/points", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, uc.calls)

	// Valid token passes through to the handler.
	gen := jwt.NewGenerator(secret, issuer, time.Minute)
	token, err := gen.Generate(context.Background(), auth.User{ID: actor, Role: auth.RoleCodev})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+actor.String()+"/points", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, uc.calls)
}
