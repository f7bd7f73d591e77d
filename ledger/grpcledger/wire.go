package grpcledger

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"nomen.so/nomen/ledger"
	"nomen.so/nomen/nsid"
)

// Struct field names of the wire protocol. Account data is base64,
// identifiers are base58 and uint64 values are decimal strings.
const (
	fieldAddress    = "address"
	fieldCommitment = "commitment"
	fieldData       = "data"
	fieldOwner      = "owner"
	fieldLamports   = "lamports"
	fieldRentEpoch  = "rent_epoch"
)

func fetchRequest(addr nsid.Identifier, c ledger.Commitment) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldAddress:    structpb.NewStringValue(addr.String()),
		fieldCommitment: structpb.NewStringValue(string(c.Normalize())),
	}}
}

func parseFetchRequest(in *structpb.Struct) (nsid.Identifier, ledger.Commitment, error) {
	addr, err := nsid.Parse(stringField(in, fieldAddress))
	if err != nil {
		return nsid.Zero, "", err
	}
	c := ledger.Commitment(stringField(in, fieldCommitment))
	if !c.Valid() {
		return nsid.Zero, "", ledger.ErrBadCommitment
	}
	return addr, c.Normalize(), nil
}

func accountStruct(acct *ledger.Account) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldData:      structpb.NewStringValue(base64.StdEncoding.EncodeToString(acct.Data)),
		fieldOwner:     structpb.NewStringValue(acct.Owner.String()),
		fieldLamports:  structpb.NewStringValue(strconv.FormatUint(acct.Lamports, 10)),
		fieldRentEpoch: structpb.NewStringValue(strconv.FormatUint(acct.RentEpoch, 10)),
	}}
}

func parseAccountStruct(in *structpb.Struct) (*ledger.Account, error) {
	data, err := base64.StdEncoding.DecodeString(stringField(in, fieldData))
	if err != nil {
		return nil, fmt.Errorf("grpcledger: invalid data field: %w", err)
	}
	owner, err := nsid.Parse(stringField(in, fieldOwner))
	if err != nil {
		return nil, fmt.Errorf("grpcledger: invalid owner field: %w", err)
	}
	lamports, err := strconv.ParseUint(stringField(in, fieldLamports), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("grpcledger: invalid lamports field: %w", err)
	}
	rentEpoch, err := strconv.ParseUint(stringField(in, fieldRentEpoch), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("grpcledger: invalid rent_epoch field: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return &ledger.Account{Data: data, Owner: owner, Lamports: lamports, RentEpoch: rentEpoch}, nil
}

func putRequest(addr nsid.Identifier, acct *ledger.Account) *structpb.Struct {
	s := accountStruct(acct)
	s.Fields[fieldAddress] = structpb.NewStringValue(addr.String())
	return s
}

func stringField(in *structpb.Struct, name string) string {
	if in == nil {
		return ""
	}
	v, ok := in.Fields[name]
	if !ok {
		return ""
	}
	return v.GetStringValue()
}
