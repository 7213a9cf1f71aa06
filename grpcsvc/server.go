// Package grpcsvc exposes the encoder and a label store over gRPC.
package grpcsvc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/cbc/barcode"
	"xdao.co/cbc/cidutil"
	"xdao.co/cbc/label"
	"xdao.co/cbc/storage"
)

// Field names of the Encode request and response structs.
const (
	FieldPostalCode       = "postal_code"
	FieldAddress          = "address"
	FieldTokens           = "tokens"
	FieldCheckDigit       = "check_digit"
	FieldCanonicalAddress = "canonical_address"
	FieldCID              = "cid"
)

// Server implements BarcodeServer. Encode works without a CAS; Put, Get and
// Has fail with FailedPrecondition when CAS is nil.
type Server struct {
	UnimplementedBarcodeServer
	CAS storage.CAS
}

func (s *Server) Encode(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	_ = ctx
	fields := in.GetFields()
	b, err := barcode.New(fields[FieldPostalCode].GetStringValue(), fields[FieldAddress].GetStringValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	tokens := make([]interface{}, 0, barcode.SequenceLength)
	for _, t := range b.Tokens() {
		tokens = append(tokens, string(t))
	}
	out := map[string]interface{}{
		FieldPostalCode:       b.PostalCode(),
		FieldCanonicalAddress: b.CanonicalAddress(),
		FieldCheckDigit:       string(b.CheckDigit()),
		FieldTokens:           tokens,
	}
	// Addresses that cannot be rendered as a label (empty, multi-line) still
	// encode; they just have no CID.
	if _, id, err := label.RenderWithCID(b); err == nil {
		out[FieldCID] = id
	}
	st, err := structpb.NewStruct(out)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return st, nil
}

func (s *Server) Put(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.CAS == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing CAS")
	}
	id, err := storage.LabelStore{CAS: s.CAS}.PutRaw(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(id.String()), nil
}

func (s *Server) Get(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.CAS == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing CAS")
	}
	id, err := cidutil.Parse(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, storage.ErrInvalidCID.Error())
	}
	l, err := storage.LabelStore{CAS: s.CAS}.GetLabel(id)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(l.Raw), nil
}

func (s *Server) Has(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	if s == nil || s.CAS == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing CAS")
	}
	id, err := cidutil.Parse(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, storage.ErrInvalidCID.Error())
	}
	return wrapperspb.Bool(s.CAS.Has(id)), nil
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, storage.ErrInvalidCID), errors.Is(err, storage.ErrInvalidLabel):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, storage.ErrCIDMismatch), errors.Is(err, storage.ErrImmutable):
		return status.Error(codes.DataLoss, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// LoggingInterceptor logs one line per unary RPC.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		level := slog.LevelInfo
		if code != codes.OK && code != codes.InvalidArgument && code != codes.NotFound {
			level = slog.LevelError
		}
		logger.Log(ctx, level, "rpc",
			"method", info.FullMethod,
			"code", code.String(),
			"duration", time.Since(start),
		)
		return resp, err
	}
}
