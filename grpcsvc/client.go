package grpcsvc

import (
	"context"
	"time"

	"github.com/ipfs/go-cid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/cbc/barcode"
	"xdao.co/cbc/cidutil"
	"xdao.co/cbc/storage"
)

// Client calls the Barcode service. It also implements storage.CAS, so a
// remote daemon can stand in for a local store.
type Client struct {
	cc     *grpc.ClientConn
	client BarcodeClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

var _ storage.CAS = (*Client)(nil)

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
	return NewClient(cc), nil
}

// NewClient wraps an existing connection. Close closes cc.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewBarcodeClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// EncodeResult is the decoded Encode response.
type EncodeResult struct {
	PostalCode       string
	CanonicalAddress string
	Tokens           []barcode.Token
	CheckDigit       barcode.Token
	// CID is empty when the address cannot be rendered as a label.
	CID string
}

// Encode asks the server to encode postalCode and address. A rejected postal
// code comes back as a *barcode.Error of KindPostalCode.
func (c *Client) Encode(ctx context.Context, postalCode, address string) (*EncodeResult, error) {
	req, err := structpb.NewStruct(map[string]interface{}{
		FieldPostalCode: postalCode,
		FieldAddress:    address,
	})
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	reply, err := c.client.Encode(ctx, req)
	if err != nil {
		if status.Code(err) == codes.InvalidArgument {
			return nil, barcode.WrapError(barcode.KindPostalCode, "CBC-POSTAL-001",
				status.Convert(err).Message(), barcode.ErrPostalCodeFormat)
		}
		return nil, err
	}

	f := reply.GetFields()
	res := &EncodeResult{
		PostalCode:       f[FieldPostalCode].GetStringValue(),
		CanonicalAddress: f[FieldCanonicalAddress].GetStringValue(),
		CheckDigit:       barcode.Token(f[FieldCheckDigit].GetStringValue()),
		CID:              f[FieldCID].GetStringValue(),
	}
	for _, v := range f[FieldTokens].GetListValue().GetValues() {
		res.Tokens = append(res.Tokens, barcode.Token(v.GetStringValue()))
	}
	return res, nil
}

func (c *Client) Put(data []byte) (cid.Cid, error) {
	if c == nil || c.client == nil {
		return cid.Undef, storage.ErrNotFound
	}
	expected, err := cidutil.CIDv1RawSHA256CID(data)
	if err != nil {
		return cid.Undef, err
	}

	ctx, cancel := c.withTimeout(context.Background())
	defer cancel()

	reply, err := c.client.Put(ctx, wrapperspb.Bytes(data))
	if err != nil {
		return cid.Undef, mapRPC(err)
	}
	id, err := cidutil.Parse(reply.GetValue())
	if err != nil {
		return cid.Undef, storage.ErrInvalidCID
	}
	if id != expected {
		return cid.Undef, storage.ErrCIDMismatch
	}
	return id, nil
}

func (c *Client) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}
	ctx, cancel := c.withTimeout(context.Background())
	defer cancel()

	reply, err := c.client.Get(ctx, wrapperspb.String(id.String()))
	if err != nil {
		return nil, mapRPC(err)
	}
	b := reply.GetValue()
	got, err := cidutil.CIDv1RawSHA256CID(b)
	if err != nil {
		return nil, err
	}
	if got != id {
		return nil, storage.ErrCIDMismatch
	}
	return b, nil
}

func (c *Client) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	ctx, cancel := c.withTimeout(context.Background())
	defer cancel()

	reply, err := c.client.Has(ctx, wrapperspb.String(id.String()))
	if err != nil {
		return false
	}
	return reply.GetValue()
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.Timeout)
}
