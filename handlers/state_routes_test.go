package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"state-tracker-system/models"
	"state-tracker-system/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStateApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	app := fiber.New()
	SetupStateRoutes(app, services.NewStateService(db), services.NewActivityService(db), nil)
	return app, mock
}

func TestToggleEndpoint_ValidatesBody(t *testing.T) {
	app, _ := newStateApp(t)

	req := httptest.NewRequest("POST", "/api/visited-states/toggle",
		strings.NewReader(`{"stateId": "CA"}`)) // missing userId
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestToggleEndpoint_FirstVisit(t *testing.T) {
	app, mock := newStateApp(t)

	// upsert: no row yet, insert one
	mock.ExpectQuery(`SELECT \* FROM "visited_states" WHERE state_id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "visited_states"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()
	// feed entry
	mock.ExpectQuery(`SELECT \* FROM "states" WHERE state_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state_id", "name"}).
			AddRow(5, "CA", "California"))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "activities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/api/visited-states/toggle",
		strings.NewReader(`{"stateId": "CA", "userId": "7", "visited": true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var record models.VisitedState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&record))
	assert.Equal(t, "CA", record.StateID)
	assert.Equal(t, "user_7", record.UserID)
	assert.True(t, record.Visited)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleEndpoint_ActivityFailureDoesNotFailToggle(t *testing.T) {
	app, mock := newStateApp(t)

	mock.ExpectQuery(`SELECT \* FROM "visited_states" WHERE state_id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state_id", "user_id", "visited"}).
			AddRow(3, "CA", "user_7", true))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "visited_states" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// state lookup fails — the feed entry is skipped, the toggle still succeeds
	mock.ExpectQuery(`SELECT \* FROM "states" WHERE state_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("POST", "/api/visited-states/toggle",
		strings.NewReader(`{"stateId": "CA", "userId": "user_7", "visited": false}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetEndpoint(t *testing.T) {
	app, mock := newStateApp(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "visited_states" WHERE user_id = \$1`).
		WithArgs("user_7").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	req := httptest.NewRequest("POST", "/api/visited-states/reset/7", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivitiesEndpoint_ClampsLimit(t *testing.T) {
	app, mock := newStateApp(t)

	// limit=5000 falls back to the default of 10
	mock.ExpectQuery(`SELECT \* FROM "activities" WHERE user_id = \$1 ORDER BY timestamp DESC LIMIT \$2`).
		WithArgs("user_7", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/api/activities/7?limit=5000", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
