package storage

import (
	"fmt"

	"github.com/ipfs/go-cid"

	"xdao.co/cbc/barcode"
	"xdao.co/cbc/cidutil"
	"xdao.co/cbc/label"
)

// LabelStore stores canonical labels in a CAS. Anything that does not parse
// as a canonical label is refused, so every stored object can be re-verified
// by re-encoding its postal code and address.
type LabelStore struct {
	CAS CAS
}

// PutLabel renders b and stores the label.
func (s LabelStore) PutLabel(b *barcode.Barcode) (cid.Cid, error) {
	raw, err := label.Render(b)
	if err != nil {
		return cid.Undef, fmt.Errorf("%w: %v", ErrInvalidLabel, err)
	}
	return s.put(raw)
}

// PutRaw stores already rendered label bytes after verifying them.
func (s LabelStore) PutRaw(raw []byte) (cid.Cid, error) {
	if _, err := label.Parse(raw); err != nil {
		return cid.Undef, fmt.Errorf("%w: %v", ErrInvalidLabel, err)
	}
	return s.put(raw)
}

// GetLabel loads and re-verifies the label stored under id.
func (s LabelStore) GetLabel(id cid.Cid) (*label.Label, error) {
	if s.CAS == nil {
		return nil, ErrNotFound
	}
	raw, err := s.CAS.Get(id)
	if err != nil {
		return nil, err
	}
	l, err := label.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLabel, err)
	}
	return l, nil
}

func (s LabelStore) put(raw []byte) (cid.Cid, error) {
	if s.CAS == nil {
		return cid.Undef, fmt.Errorf("storage: LabelStore has no CAS")
	}
	want, err := cidutil.CIDv1RawSHA256CID(raw)
	if err != nil {
		return cid.Undef, err
	}
	id, err := s.CAS.Put(raw)
	if err != nil {
		return cid.Undef, err
	}
	if id != want {
		return cid.Undef, ErrCIDMismatch
	}
	return id, nil
}
