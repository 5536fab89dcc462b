package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the committed game state",
	Args:  cobra.NoArgs,
	RunE:  getState,
}

func getState(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetState(ctx, &emptypb.Empty{})
	if err != nil {
		return describeError("get state", err)
	}

	return printStruct(resp)
}
