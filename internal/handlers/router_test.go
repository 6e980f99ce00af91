package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oggyb/matching-service/internal/app"
	"github.com/oggyb/matching-service/internal/cache"
	"github.com/oggyb/matching-service/internal/config"
	"github.com/oggyb/matching-service/internal/db"
	"github.com/oggyb/matching-service/internal/events"
	"github.com/oggyb/matching-service/internal/handlers"
	"github.com/oggyb/matching-service/internal/logger"
)

var fixedNow = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

type testAPI struct {
	t      *testing.T
	srv    *httptest.Server
	events *events.Memory
	apiKey string
}

func setupAPI(t *testing.T, opts ...handlers.Option) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.Driver = "sqlite"
	cfg.DB.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := db.NewDB(cfg)
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	mr := miniredis.RunT(t)
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })

	pub := events.NewMemory()
	appCtx := app.New(database, rc, logger.Discard(),
		app.WithPublisher(pub),
		app.WithClock(func() time.Time { return fixedNow }),
	)

	srv := httptest.NewServer(handlers.NewRouter(appCtx, opts...))
	t.Cleanup(srv.Close)
	return &testAPI{t: t, srv: srv, events: pub}
}

// do sends a JSON request and decodes the JSON response into a generic value.
func (a *testAPI) do(method, path string, body any) (int, any) {
	a.t.Helper()

	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, a.srv.URL+path, rdr)
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("X-API-Key", a.apiKey)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	var out any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func obj(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected JSON object, got %T", v)
	return m
}

func TestAgeRangeScenario(t *testing.T) {
	api := setupAPI(t)

	code, body := api.do(http.MethodPost, "/api/v1/age-range", map[string]any{
		"user_id": "42", "date_of_birth": "1995-06-15",
	})
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "Age range for user 42 created successfully", obj(t, body)["message"])

	code, body = api.do(http.MethodGet, "/api/v1/age-range/42", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{
		"user_id":        "42",
		"range_18_to_24": false,
		"range_25_to_34": true,
		"range_35_to_44": false,
		"range_above_44": false,
	}, obj(t, body))

	code, _ = api.do(http.MethodPut, "/api/v1/age-range/42", map[string]any{"date_of_birth": "1960-01-01"})
	require.Equal(t, http.StatusOK, code)

	_, body = api.do(http.MethodGet, "/api/v1/age-range/42", nil)
	m := obj(t, body)
	assert.Equal(t, true, m["range_above_44"])
	assert.Equal(t, false, m["range_25_to_34"])

	code, _ = api.do(http.MethodDelete, "/api/v1/age-range/42", nil)
	require.Equal(t, http.StatusOK, code)

	code, body = api.do(http.MethodGet, "/api/v1/age-range/42", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, obj(t, body)["detail"])
}

func TestPreferenceErrors(t *testing.T) {
	api := setupAPI(t)

	tests := []struct {
		name string
		path string
		body any
		want int
	}{
		{"underage", "/api/v1/age-range", map[string]any{"user_id": "1", "date_of_birth": "2010-01-01"}, http.StatusBadRequest},
		{"bad date", "/api/v1/age-range", map[string]any{"user_id": "1", "date_of_birth": "15/06/1995"}, http.StatusBadRequest},
		{"missing field", "/api/v1/religious-level", map[string]any{"user_id": "1"}, http.StatusBadRequest},
		{"missing user", "/api/v1/religious-level", map[string]any{"religious_level": "practising"}, http.StatusBadRequest},
		{"unknown label", "/api/v1/sects", map[string]any{"user_id": "1", "sects": "unknown"}, http.StatusBadRequest},
		{"height out of range", "/api/v1/partner-height", map[string]any{"user_id": "1", "partner_height": 230}, http.StatusBadRequest},
		{"wrong type", "/api/v1/partner-height", map[string]any{"user_id": "1", "partner_height": "tall"}, http.StatusBadRequest},
		{"unknown ethnic", "/api/v1/partner-ethnics", map[string]any{"user_id": "1", "partner_ethnic_origins": []string{"arab", "martian"}}, http.StatusBadRequest},
		{"bad gender score", "/api/v1/gender", map[string]any{"user_id": "1", "gender_score": 3}, http.StatusBadRequest},
		{"not json", "/api/v1/gender", "nope", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := api.do(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.want, code)
			assert.NotEmpty(t, obj(t, body)["detail"])
		})
	}

	code, _ := api.do(http.MethodPut, "/api/v1/sects/nobody", map[string]any{"sects": "sunni"})
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = api.do(http.MethodDelete, "/api/v1/sects/nobody", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestPreferenceDuplicateCreate(t *testing.T) {
	api := setupAPI(t)

	body := map[string]any{"user_id": 7, "prayer_frequency": "always_prays"}
	code, _ := api.do(http.MethodPost, "/api/v1/prayer-frequency", body)
	require.Equal(t, http.StatusCreated, code)

	code, resp := api.do(http.MethodPost, "/api/v1/prayer-frequency", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, obj(t, resp)["detail"], "7")

	_, resp = api.do(http.MethodGet, "/api/v1/prayer-frequency/7", nil)
	assert.Equal(t, true, obj(t, resp)["always_pray"])
}

func TestPreferenceVariants(t *testing.T) {
	api := setupAPI(t)

	code, _ := api.do(http.MethodPost, "/api/v1/gender", map[string]any{"user_id": "g1", "gender": "both"})
	require.Equal(t, http.StatusCreated, code)
	_, body := api.do(http.MethodGet, "/api/v1/gender/g1", nil)
	assert.Equal(t, true, obj(t, body)["male"])
	assert.Equal(t, true, obj(t, body)["female"])

	code, _ = api.do(http.MethodPut, "/api/v1/gender/g1", map[string]any{"gender_score": 1})
	require.Equal(t, http.StatusOK, code)
	_, body = api.do(http.MethodGet, "/api/v1/gender/g1", nil)
	assert.Equal(t, false, obj(t, body)["male"])
	assert.Equal(t, true, obj(t, body)["female"])

	code, _ = api.do(http.MethodPost, "/api/v1/partner-height", map[string]any{"user_id": "h1", "partner_height": 172.4})
	require.Equal(t, http.StatusCreated, code)
	_, body = api.do(http.MethodGet, "/api/v1/partner-height/h1", nil)
	assert.Equal(t, true, obj(t, body)["partner_range_171_to_175"])

	code, _ = api.do(http.MethodPost, "/api/v1/smoking-status", map[string]any{"user_id": "s1", "does_smoke": false})
	require.Equal(t, http.StatusCreated, code)
	_, body = api.do(http.MethodGet, "/api/v1/smoking-status/s1", nil)
	assert.Equal(t, false, obj(t, body)["does_smoke"])
}

func TestMultiSelect(t *testing.T) {
	api := setupAPI(t)

	code, body := api.do(http.MethodGet, "/api/v1/partner-personality-traits/available", nil)
	require.Equal(t, http.StatusOK, code)
	values, ok := body.([]any)
	require.True(t, ok, "expected bare JSON list, got %T", body)
	assert.Contains(t, values, "honest")

	code, _ = api.do(http.MethodPost, "/api/v1/partner-personality-traits", map[string]any{
		"user_id": "m1", "partner_personality_traits": []string{"honest", "funny", "honest"},
	})
	require.Equal(t, http.StatusCreated, code)

	_, body = api.do(http.MethodGet, "/api/v1/partner-personality-traits/m1", nil)
	assert.ElementsMatch(t, []any{"honest", "funny"}, obj(t, body)["partner_personality_traits"])

	code, body = api.do(http.MethodGet, "/api/v1/partner-personality-traits?skip=0&limit=10", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body, 1)

	code, _ = api.do(http.MethodGet, "/api/v1/partner-personality-traits?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestEmptyListIsArray(t *testing.T) {
	api := setupAPI(t)

	code, body := api.do(http.MethodGet, "/api/v1/religious-level", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, body)
}

func TestMatchScenario(t *testing.T) {
	api := setupAPI(t)

	code, _ := api.do(http.MethodPost, "/api/v1/match/relationship", map[string]any{
		"partner_id_1": "u1", "partner_id_2": "u2",
	})
	require.Equal(t, http.StatusCreated, code)

	_, body := api.do(http.MethodGet, "/api/v1/match/relationship/u2/u1", nil)
	assert.Equal(t, "REQUESTED", obj(t, body)["match_status"])

	code, _ = api.do(http.MethodPost, "/api/v1/match/relationship", map[string]any{
		"partner_id_1": "u2", "partner_id_2": "u1",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = api.do(http.MethodPut, "/api/v1/match/relationship/u1/u2/accept", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "MATCHED", obj(t, body)["match_status"])

	code, body = api.do(http.MethodPut, "/api/v1/match/relationship/u1/u2/decline", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, obj(t, body)["detail"])

	code, body = api.do(http.MethodGet, "/api/v1/match/user/u2?status=matched", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body, 1)

	assert.Equal(t, []string{events.MatchRequested, events.MatchAccepted}, api.events.Types())
}

func TestMatchErrors(t *testing.T) {
	api := setupAPI(t)

	code, _ := api.do(http.MethodPut, "/api/v1/match/relationship/x/y/accept", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = api.do(http.MethodPost, "/api/v1/match/relationship", map[string]any{
		"partner_id_1": "u1", "partner_id_2": "u1",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = api.do(http.MethodPost, "/api/v1/match/relationship", map[string]any{
		"partner_id_1": "u1", "partner_id_2": "u2", "match_status": "MATCHED",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = api.do(http.MethodGet, "/api/v1/match/user/u1?status=PENDING", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestVisits(t *testing.T) {
	api := setupAPI(t)

	visit := map[string]any{"user_id": "a", "visited_user_id": "b"}

	code, _ := api.do(http.MethodPut, "/api/v1/visited", visit)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = api.do(http.MethodPost, "/api/v1/visited", visit)
	require.Equal(t, http.StatusCreated, code)
	code, _ = api.do(http.MethodPost, "/api/v1/visited", visit)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = api.do(http.MethodPost, "/api/v1/visited", map[string]any{"user_id": "c", "visited_user_id": "b"})
	require.Equal(t, http.StatusCreated, code)

	code, body := api.do(http.MethodPut, "/api/v1/visited", visit)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Visit record confirmed successfully", obj(t, body)["message"])

	code, body = api.do(http.MethodGet, "/api/v1/visited/b/visitors?limit=1", nil)
	require.Equal(t, http.StatusOK, code)
	page := obj(t, body)
	assert.Len(t, page["visitors"], 1)
	token, ok := page["pagination_token"].(string)
	require.True(t, ok)

	_, body = api.do(http.MethodGet, "/api/v1/visited/b/visitors?limit=1&pagination_token="+token, nil)
	page = obj(t, body)
	assert.Len(t, page["visitors"], 1)
	assert.Nil(t, page["pagination_token"])

	code, body = api.do(http.MethodGet, "/api/v1/visited/b/visitors/count", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, obj(t, body)["count"])

	code, _ = api.do(http.MethodPost, "/api/v1/visited", map[string]any{"user_id": "a", "visited_user_id": "a"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealthAndNotFound(t *testing.T) {
	api := setupAPI(t)

	code, body := api.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", obj(t, body)["status"])
	assert.Equal(t, "connected", obj(t, body)["database"])

	code, body = api.do(http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, obj(t, body)["detail"], "/api/v1/nope")
}

func TestAPIKeyGuard(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("k3y"), bcrypt.MinCost)
	require.NoError(t, err)
	api := setupAPI(t, handlers.WithAPIKeyHash(string(hash)))

	code, _ := api.do(http.MethodGet, "/api/v1/gender", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	// health stays open
	code, _ = api.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)

	api.apiKey = "k3y"
	code, _ = api.do(http.MethodGet, "/api/v1/gender", nil)
	assert.Equal(t, http.StatusOK, code)
}
