package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/aponysus/outcome/aggregate"
	integration "github.com/aponysus/outcome/integrations/grpc"
	"github.com/aponysus/outcome/integrations/zaplog"
	"github.com/aponysus/outcome/message"
	"github.com/aponysus/outcome/result"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	agg := aggregate.New(
		aggregate.WithName("grpc-client"),
		aggregate.WithObserver(zaplog.New(logger)),
	)
	interceptor := integration.UnaryClientInterceptor(agg)

	conn, err := grpc.NewClient("localhost:50051",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(interceptor),
	)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	fmt.Println("gRPC client initialized. (This example requires a running server to execute real calls).")
	fmt.Println("Simulating call to /shop.Orders/Place...")

	// The fake server reports a partial outcome as a status with details.
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return integration.ToError(result.Partial(
			message.MustSuccess("reserved", "stock reserved"),
			message.MustError("payment_declined", "card expired"),
		))
	}

	err = interceptor(context.Background(), "/shop.Orders/Place", "req", "resp", conn, invoker)
	r := integration.FromError(err)
	fmt.Printf("Final result: %s with %d messages\n", r, r.Len())
	for _, m := range r.All() {
		fmt.Printf(" - %s\n", m)
	}
}
