package grpcsvc

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"xdao.co/cbc/barcode"
	"xdao.co/cbc/cidutil"
	"xdao.co/cbc/storage"
	"xdao.co/cbc/storage/localfs"
	"xdao.co/cbc/storage/testkit"
)

func startServer(t *testing.T, srv *Server, opts ...grpc.ServerOption) *Client {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer(opts...)
	RegisterBarcodeServer(s, srv)

	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	dialer := func(ctx context.Context, _ string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	client := NewClient(cc)
	client.Timeout = 2 * time.Second
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGRPC_Encode(t *testing.T) {
	client := startServer(t, &Server{})

	res, err := client.Encode(context.Background(), "263-0023", "千葉市稲毛区緑町3丁目30-8　郵便ビル403号")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want, err := barcode.New("263-0023", "千葉市稲毛区緑町3丁目30-8　郵便ビル403号")
	if err != nil {
		t.Fatalf("barcode.New: %v", err)
	}
	if diff := cmp.Diff(want.Tokens(), res.Tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if res.PostalCode != "2630023" {
		t.Fatalf("postal code: got %q", res.PostalCode)
	}
	if res.CanonicalAddress != "3-30-8-403" {
		t.Fatalf("canonical address: got %q", res.CanonicalAddress)
	}
	if res.CheckDigit != "5" {
		t.Fatalf("check digit: got %q", res.CheckDigit)
	}
	if _, err := cidutil.Parse(res.CID); err != nil {
		t.Fatalf("CID %q: %v", res.CID, err)
	}
}

func TestGRPC_EncodeEmptyAddressHasNoCID(t *testing.T) {
	client := startServer(t, &Server{})

	res, err := client.Encode(context.Background(), "2630023", "")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(res.Tokens) != barcode.SequenceLength {
		t.Fatalf("tokens: got %d", len(res.Tokens))
	}
	if res.CID != "" {
		t.Fatalf("expected no CID, got %q", res.CID)
	}
}

func TestGRPC_EncodeRejectsPostalCode(t *testing.T) {
	client := startServer(t, &Server{})

	_, err := client.Encode(context.Background(), "123", "東京都")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !barcode.IsKind(err, barcode.KindPostalCode) {
		t.Fatalf("expected KindPostalCode, got %v", err)
	}
	if !errors.Is(err, barcode.ErrPostalCodeFormat) {
		t.Fatalf("expected ErrPostalCodeFormat in chain")
	}
}

func TestGRPC_LocalFS_RoundTrip(t *testing.T) {
	cas, err := localfs.New(t.TempDir())
	if err != nil {
		t.Fatalf("localfs.New: %v", err)
	}
	client := startServer(t, &Server{CAS: cas})

	payload := testkit.SampleLabel(t)
	id, err := client.Put(payload)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !client.Has(id) {
		t.Fatalf("Has: expected true")
	}
	got, err := client.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch")
	}

	missing, err := cidutil.CIDv1RawSHA256CID([]byte("missing"))
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID: %v", err)
	}
	if client.Has(missing) {
		t.Fatalf("Has(missing): expected false")
	}
	if _, err := client.Get(missing); !storage.IsNotFound(err) {
		t.Fatalf("Get(missing): got %v want ErrNotFound", err)
	}
}

func TestGRPC_PutRejectsNonLabel(t *testing.T) {
	cas, err := localfs.New(t.TempDir())
	if err != nil {
		t.Fatalf("localfs.New: %v", err)
	}
	client := startServer(t, &Server{CAS: cas})

	_, err = client.Put([]byte("hello grpcsvc"))
	if !errors.Is(err, storage.ErrInvalidLabel) {
		t.Fatalf("Put(non-label): got %v want ErrInvalidLabel", err)
	}
}

func TestGRPC_StoreWithoutCAS(t *testing.T) {
	client := startServer(t, &Server{})
	if _, err := client.Put(testkit.SampleLabel(t)); err == nil {
		t.Fatalf("expected FailedPrecondition error")
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	client := startServer(t, &Server{}, grpc.UnaryInterceptor(LoggingInterceptor(logger)))

	if _, err := client.Encode(context.Background(), "2630023", "3丁目"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "/"+ServiceName+"/Encode") {
		t.Fatalf("log line missing method: %q", out)
	}
	if !strings.Contains(out, "code=OK") {
		t.Fatalf("log line missing code: %q", out)
	}
}
