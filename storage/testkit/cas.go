// Package testkit holds conformance checks shared by every storage.CAS backend.
package testkit

import (
	"bytes"
	"testing"

	"github.com/ipfs/go-cid"

	"xdao.co/cbc/barcode"
	"xdao.co/cbc/cidutil"
	"xdao.co/cbc/label"
	"xdao.co/cbc/storage"
)

// NewCAS constructs a fresh, empty CAS instance for a test.
// The returned CAS MUST be isolated from other tests.
type NewCAS func(t *testing.T) storage.CAS

// SampleLabel renders the label for the Japan Post 263-0023 example.
func SampleLabel(t *testing.T) []byte {
	t.Helper()
	b, err := barcode.New("263-0023", "千葉市稲毛区緑町3丁目30-8　郵便ビル403号")
	if err != nil {
		t.Fatalf("barcode.New: %v", err)
	}
	raw, err := label.Render(b)
	if err != nil {
		t.Fatalf("label.Render: %v", err)
	}
	return raw
}

func RunCASConformance(t *testing.T, newCAS NewCAS) {
	t.Helper()

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		cas := newCAS(t)
		want := SampleLabel(t)

		id, err := cas.Put(want)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		wantID, err := cidutil.CIDv1RawSHA256CID(want)
		if err != nil {
			t.Fatalf("CIDv1RawSHA256CID failed: %v", err)
		}
		if id != wantID {
			t.Fatalf("Put CID mismatch: got %s want %s", id, wantID)
		}

		got, err := cas.Get(id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Get bytes mismatch")
		}
	})

	t.Run("PutIdempotent", func(t *testing.T) {
		cas := newCAS(t)
		b := SampleLabel(t)

		id1, err := cas.Put(b)
		if err != nil {
			t.Fatalf("Put(1) failed: %v", err)
		}
		id2, err := cas.Put(b)
		if err != nil {
			t.Fatalf("Put(2) failed: %v", err)
		}
		if id1 != id2 {
			t.Fatalf("Put not idempotent: %s vs %s", id1, id2)
		}
	})

	t.Run("HasAndNotFound", func(t *testing.T) {
		cas := newCAS(t)
		b := []byte("missing")
		id, err := cidutil.CIDv1RawSHA256CID(b)
		if err != nil {
			t.Fatalf("CIDv1RawSHA256CID failed: %v", err)
		}

		if cas.Has(id) {
			t.Fatalf("Has returned true for missing CID")
		}
		if _, err := cas.Get(id); !storage.IsNotFound(err) {
			t.Fatalf("Get missing: got err=%v want ErrNotFound", err)
		}

		if _, err := cas.Put(b); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if !cas.Has(id) {
			t.Fatalf("Has returned false after Put")
		}
	})

	t.Run("RejectUndefCID", func(t *testing.T) {
		cas := newCAS(t)
		var undef cid.Cid
		if cas.Has(undef) {
			t.Fatalf("Has should be false for undefined CID")
		}
		if _, err := cas.Get(undef); err == nil {
			t.Fatalf("Get should fail for undefined CID")
		}
	})

	t.Run("LabelStoreRoundTrip", func(t *testing.T) {
		store := storage.LabelStore{CAS: newCAS(t)}
		b, err := barcode.New("110-0016", "東京都台東区台東5-6-3　ABCビル10F")
		if err != nil {
			t.Fatalf("barcode.New: %v", err)
		}
		id, err := store.PutLabel(b)
		if err != nil {
			t.Fatalf("PutLabel: %v", err)
		}
		l, err := store.GetLabel(id)
		if err != nil {
			t.Fatalf("GetLabel: %v", err)
		}
		if l.Barcode.String() != b.String() {
			t.Fatalf("tokens mismatch: got %q want %q", l.Barcode.String(), b.String())
		}
		if _, err := store.PutRaw([]byte("not a label")); err == nil {
			t.Fatalf("PutRaw accepted a non-label")
		}
	})
}
