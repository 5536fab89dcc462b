package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/handlers/commands"
	"github.com/KirkDiggler/trivia-quest/internal/handlers/rest"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/trivia-quest/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/trivia-quest/internal/testutils"
)

type RESTHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *gamemock.MockService
	handler     *rest.Handler
}

func TestRESTHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RESTHandlerTestSuite))
}

func (s *RESTHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = gamemock.NewMockService(s.ctrl)

	router, err := commands.NewRouter(&commands.Config{Service: s.mockService})
	s.Require().NoError(err)

	handler, err := rest.NewHandler(&rest.Config{
		Router:         router,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *RESTHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RESTHandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *RESTHandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *RESTHandlerTestSuite) TestNewHandlerValidation() {
	_, err := rest.NewHandler(&rest.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RESTHandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("healthy", s.decode(rec)["status"])
	s.Equal("http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *RESTHandlerTestSuite) TestGetState() {
	st := testutils.CreateTestGameStateInCombat(testutils.CreateTestEnemy(1, 80))
	st.Gems = 4
	s.mockService.EXPECT().
		GetState(gomock.Any()).
		Return(&game.GetStateOutput{State: st, Phase: entities.CombatPhaseInCombat}, nil)

	rec := s.do(http.MethodGet, "/v1/state", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	body := s.decode(rec)
	s.Equal("in_combat", body["phase"])
	state, ok := body["state"].(map[string]any)
	s.Require().True(ok)
	s.InDelta(4, state["gems"], 1e-9)
	enemy, ok := state["currentEnemy"].(map[string]any)
	s.Require().True(ok)
	s.Equal(testutils.TestEnemy, enemy["name"])
}

func (s *RESTHandlerTestSuite) TestListOps() {
	rec := s.do(http.MethodGet, "/v1/ops", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	ops, ok := s.decode(rec)["ops"].([]any)
	s.Require().True(ok)
	s.Len(ops, 39)
}

func (s *RESTHandlerTestSuite) TestExecute() {
	s.mockService.EXPECT().
		OpenChest(gomock.Any(), &game.OpenChestInput{Cost: 100}).
		Return(&game.OpenChestOutput{Success: true, Rarity: entities.RarityRare, NewDiscovery: true}, nil)

	rec := s.do(http.MethodPost, "/v1/ops/open_chest", `{"cost": 100}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	body := s.decode(rec)
	s.Equal("open_chest", body["op"])
	result, ok := body["result"].(map[string]any)
	s.Require().True(ok)
	s.Equal("rare", result["rarity"])
	s.Equal(true, result["newDiscovery"])
}

func (s *RESTHandlerTestSuite) TestExecuteWithoutBody() {
	s.mockService.EXPECT().
		PlantSeed(gomock.Any()).
		Return(&game.ActionOutput{Success: false}, nil)

	rec := s.do(http.MethodPost, "/v1/ops/plant_seed", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	result := s.decode(rec)["result"].(map[string]any)
	s.Equal(false, result["success"])
}

func (s *RESTHandlerTestSuite) TestErrorStatuses() {
	testCases := []struct {
		name   string
		path   string
		body   string
		setup  func()
		status int
		code   string
	}{
		{
			name:   "unknown op",
			path:   "/v1/ops/summon_dragon",
			status: http.StatusBadRequest,
			code:   string(errors.CodeInvalidArgument),
		},
		{
			name:   "malformed args",
			path:   "/v1/ops/attack",
			body:   `{"hit": yes}`,
			status: http.StatusBadRequest,
			code:   string(errors.CodeInvalidArgument),
		},
		{
			name: "not loaded",
			path: "/v1/ops/retreat",
			setup: func() {
				s.mockService.EXPECT().Retreat(gomock.Any()).Return(nil, errors.FailedPrecondition("game state not loaded"))
			},
			status: http.StatusServiceUnavailable,
			code:   string(errors.CodeFailedPrecondition),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setup != nil {
				tc.setup()
			}
			rec := s.do(http.MethodPost, tc.path, tc.body)
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, s.decode(rec)["code"])
		})
	}
}

func (s *RESTHandlerTestSuite) TestMethodMismatch() {
	rec := s.do(http.MethodGet, "/v1/ops/mine", "")
	s.Equal(http.StatusMethodNotAllowed, rec.Code)
}

func (s *RESTHandlerTestSuite) TestPreflight() {
	rec := s.do(http.MethodOptions, "/v1/ops/mine", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}
