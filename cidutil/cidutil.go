// Package cidutil derives the content identifiers used for stored labels:
// CIDv1 with the "raw" multicodec over a sha2-256 multihash.
package cidutil

import (
	"errors"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ErrUnsupported is returned by Parse for CIDs that are well formed but not
// CIDv1 raw sha2-256.
var ErrUnsupported = errors.New("cidutil: only CIDv1 raw sha2-256 is supported")

// CIDv1RawSHA256 returns the CID of data in its default string form.
func CIDv1RawSHA256(data []byte) string {
	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		// multihash.Sum only fails for unknown codes or bad lengths.
		return ""
	}
	return id.String()
}

// CIDv1RawSHA256CID returns the CID of data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Parse decodes s and checks that it uses the label CID profile.
func Parse(s string) (cid.Cid, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, err
	}
	p := id.Prefix()
	if p.Version != 1 || p.Codec != cid.Raw || p.MhType != multihash.SHA2_256 {
		return cid.Undef, ErrUnsupported
	}
	return id, nil
}
