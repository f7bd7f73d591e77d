package grpcledger

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"nomen.so/nomen/ledger"
	"nomen.so/nomen/nsid"
)

// Server exposes a ledger backend over the Ledger gRPC service.
type Server struct {
	UnimplementedLedgerServer
	Fetcher ledger.Fetcher
	Store   ledger.Store
}

func (s *Server) Fetch(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if s == nil || s.Fetcher == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing ledger backend")
	}
	addr, c, err := parseFetchRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	acct, err := s.Fetcher.Fetch(ctx, addr, c)
	if err != nil {
		return nil, mapErr(err)
	}
	return accountStruct(acct), nil
}

func (s *Server) Has(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing ledger backend")
	}
	addr, err := nsid.Parse(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, ledger.ErrInvalidAddress.Error())
	}
	return wrapperspb.Bool(s.Store.Has(addr)), nil
}

func (s *Server) Put(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing ledger backend")
	}
	addr, err := nsid.Parse(stringField(in, fieldAddress))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, ledger.ErrInvalidAddress.Error())
	}
	acct, err := parseAccountStruct(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.Store.Put(addr, acct); err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(addr.String()), nil
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case ledger.IsNotFound(err):
		return status.Error(codes.NotFound, ledger.ErrNotFound.Error())
	case errors.Is(err, ledger.ErrBadCommitment):
		return status.Error(codes.InvalidArgument, ledger.ErrBadCommitment.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
