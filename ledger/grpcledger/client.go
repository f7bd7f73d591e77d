// Package grpcledger carries the ledger boundary over gRPC, using
// protobuf well-known types so no codegen toolchain is needed.
package grpcledger

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"nomen.so/nomen/ledger"
	"nomen.so/nomen/nsid"
)

// Client implements ledger.Fetcher over the Ledger gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client LedgerClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

var _ ledger.Fetcher = (*Client)(nil)

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewLedgerClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) Fetch(ctx context.Context, addr nsid.Identifier, commitment ledger.Commitment) (*ledger.Account, error) {
	if c == nil || c.client == nil {
		return nil, ledger.ErrNotFound
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	reply, err := c.client.Fetch(ctx, fetchRequest(addr, commitment))
	if err != nil {
		return nil, mapRPC(err)
	}
	return parseAccountStruct(reply)
}

// Put seeds an account on the remote backend. Intended for tests and
// tooling, not for the resolution path.
func (c *Client) Put(ctx context.Context, addr nsid.Identifier, acct *ledger.Account) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.client.Put(ctx, putRequest(addr, acct))
	return mapRPC(err)
}

// Has reports whether the remote backend holds an account at addr.
func (c *Client) Has(ctx context.Context, addr nsid.Identifier) bool {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	reply, err := c.client.Has(ctx, wrapperspb.String(addr.String()))
	if err != nil {
		return false
	}
	return reply.GetValue()
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(ctx, c.Timeout)
	}
	return context.WithCancel(ctx)
}
