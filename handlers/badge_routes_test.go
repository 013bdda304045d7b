package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"state-tracker-system/models"
	"state-tracker-system/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newBadgeApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	app := fiber.New()
	SetupBadgeRoutes(app, services.NewBadgeService(db))
	return app, mock
}

func TestCheckBadgesEndpoint_EmptyCatalog(t *testing.T) {
	app, mock := newBadgeApp(t)

	mock.ExpectQuery(`SELECT "state_id" FROM "visited_states"`).
		WillReturnRows(sqlmock.NewRows([]string{"state_id"}))
	mock.ExpectQuery(`SELECT \* FROM "badges" ORDER BY tier`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT "badge_id" FROM "user_badges"`).
		WillReturnRows(sqlmock.NewRows([]string{"badge_id"}))

	req := httptest.NewRequest("POST", "/api/check-badges/42", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// the empty case must serialize as [] rather than null
	assert.JSONEq(t, `{"newBadgesEarned": false, "badges": []}`, string(body))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBadgesEndpoint_ReturnsCatalogWithCriteria(t *testing.T) {
	app, mock := newBadgeApp(t)

	mock.ExpectQuery(`SELECT \* FROM "badges" ORDER BY tier`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "criteria", "tier", "category"}).
			AddRow(1, "Explorer", []byte(`{"type": "states_count", "value": 10}`), 1, "milestone"))

	req := httptest.NewRequest("GET", "/api/badges", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var badges []models.Badge
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&badges))
	require.Len(t, badges, 1)
	assert.Equal(t, "Explorer", badges[0].Name)

	// criteria travels through the API untouched
	criteria, err := models.ParseCriteria(badges[0].Criteria)
	require.NoError(t, err)
	assert.Equal(t, models.CriteriaStateCount, criteria.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBadgeEndpoint_InvalidID(t *testing.T) {
	app, _ := newBadgeApp(t)

	req := httptest.NewRequest("GET", "/api/badges/not-a-number", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetBadgeEndpoint_NotFound(t *testing.T) {
	app, mock := newBadgeApp(t)

	mock.ExpectQuery(`SELECT \* FROM "badges" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/api/badges/99", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAwardBadgeEndpoint_ValidatesBody(t *testing.T) {
	app, _ := newBadgeApp(t)

	req := httptest.NewRequest("POST", "/api/award-badge", nil)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
