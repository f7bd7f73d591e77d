package grpcledger

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nomen.so/nomen/ledger"
)

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return ledger.ErrNotFound
	case codes.InvalidArgument:
		// Server uses InvalidArgument for malformed addresses and
		// unknown commitment levels.
		switch st.Message() {
		case ledger.ErrBadCommitment.Error():
			return ledger.ErrBadCommitment
		default:
			return ledger.ErrInvalidAddress
		}
	default:
		return err
	}
}
