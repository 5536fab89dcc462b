package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/handlers/commands"
	"github.com/KirkDiggler/trivia-quest/internal/handlers/game/v1alpha1"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/trivia-quest/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/trivia-quest/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *gamemock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = gamemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	router, err := commands.NewRouter(&commands.Config{Service: s.mockService})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Router: router})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(op string, args map[string]any) *structpb.Struct {
	fields := map[string]any{"op": op}
	if args != nil {
		fields["args"] = args
	}
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1alpha1.NewHandler(nil)
	s.Require().Error(err)

	_, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "router is required")
}

func (s *HandlerTestSuite) TestGetState() {
	st := testutils.CreateTestGameState()
	st.Zone = 3
	s.mockService.EXPECT().
		GetState(s.ctx).
		Return(&game.GetStateOutput{State: st, Phase: entities.CombatPhaseIdle}, nil)

	resp, err := s.handler.GetState(s.ctx, &emptypb.Empty{})
	s.Require().NoError(err)
	s.Equal("idle", resp.Fields["phase"].GetStringValue())

	state := resp.Fields["state"].GetStructValue()
	s.Require().NotNil(state)
	s.InDelta(500, state.Fields["coins"].GetNumberValue(), 1e-9)
	s.InDelta(3, state.Fields["zone"].GetNumberValue(), 1e-9)

	inv := state.Fields["inventory"].GetStructValue()
	s.Require().NotNil(inv)
	s.Equal(testutils.TestWeaponID, inv.Fields["currentWeaponId"].GetStringValue())
}

func (s *HandlerTestSuite) TestGetStateBeforeLoad() {
	s.mockService.EXPECT().
		GetState(s.ctx).
		Return(nil, errors.FailedPrecondition("game state not loaded"))

	resp, err := s.handler.GetState(s.ctx, &emptypb.Empty{})
	s.Nil(resp)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
}

func (s *HandlerTestSuite) TestExecute() {
	s.mockService.EXPECT().
		SellWeapon(s.ctx, &game.ItemInput{ID: "w2"}).
		Return(&game.SellOutput{Success: true, Earned: 35}, nil)

	resp, err := s.handler.Execute(s.ctx, s.request(commands.OpSellWeapon, map[string]any{"id": "w2"}))
	s.Require().NoError(err)
	s.Equal(commands.OpSellWeapon, resp.Fields["op"].GetStringValue())

	result := resp.Fields["result"].GetStructValue()
	s.Require().NotNil(result)
	s.True(result.Fields["success"].GetBoolValue())
	s.InDelta(35, result.Fields["earned"].GetNumberValue(), 1e-9)
}

func (s *HandlerTestSuite) TestExecuteErrors() {
	testCases := []struct {
		name string
		req  *structpb.Struct
		code codes.Code
	}{
		{name: "missing op", req: &structpb.Struct{}, code: codes.InvalidArgument},
		{name: "unknown op", req: s.request("teleport", nil), code: codes.InvalidArgument},
		{name: "bad args", req: s.request(commands.OpOpenChest, map[string]any{"cost": "free"}), code: codes.InvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.handler.Execute(s.ctx, tc.req)
			s.Nil(resp)
			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Equal(tc.code, st.Code())
		})
	}
}

func (s *HandlerTestSuite) TestRoundTripOverGRPC() {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	v1alpha1.RegisterGameServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockService.EXPECT().
		Attack(gomock.Any(), &game.AttackInput{Hit: true}).
		Return(&game.AttackOutput{Success: true, Outcome: game.AttackOutcomeVictory}, nil)

	client := v1alpha1.NewGameServiceClient(conn)
	resp, err := client.Execute(s.ctx, s.request(commands.OpAttack, map[string]any{"hit": true}))
	s.Require().NoError(err)
	s.Equal("victory", resp.Fields["result"].GetStructValue().Fields["outcome"].GetStringValue())

	s.mockService.EXPECT().
		GetState(gomock.Any()).
		Return(nil, errors.FailedPrecondition("game state not loaded"))

	_, err = client.GetState(s.ctx, &emptypb.Empty{})
	s.Equal(codes.FailedPrecondition, status.Code(err))
}
