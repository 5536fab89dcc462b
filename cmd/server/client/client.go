// Package client provides commands that drive a running game server over gRPC
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/handlers/game/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Drive a running Trivia Quest server",
	Long:  `Client commands call the game service over gRPC and print the JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(stateCmd)
	ClientCmd.AddCommand(execCmd)
	ClientCmd.AddCommand(attackCmd)
}

// createGameClient creates a game service client
func createGameClient() (v1alpha1.GameServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGameServiceClient(conn), cleanup, nil
}

// execute sends one operation and prints the result
func execute(op string, args map[string]any) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fields := map[string]any{"op": op}
	if args != nil {
		fields["args"] = args
	}
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("invalid args: %w", err)
	}

	resp, err := client.Execute(ctx, req)
	if err != nil {
		return describeError(op, err)
	}

	return printStruct(resp)
}

// describeError decodes a status error from the server into its code,
// message and metadata
func describeError(action string, err error) error {
	decoded := errors.FromGRPCError(err)
	msg := fmt.Sprintf("%s failed: %s: %s", action, errors.GetCode(decoded), errors.GetMessage(decoded))

	meta := errors.GetMeta(decoded)
	if len(meta) == 0 {
		return fmt.Errorf("%s", msg)
	}

	parts := make([]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return fmt.Errorf("%s (%s)", msg, strings.Join(parts, " "))
}

func printStruct(s *structpb.Struct) error {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parseArgs decodes a JSON object argument; empty means no args
func parseArgs(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("args must be a JSON object: %w", err)
	}
	return args, nil
}
