package grpcsvc

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/cbc/storage"
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
		return storage.ErrNotFound
	case codes.InvalidArgument:
		// The server prefixes label rejections with the sentinel text.
		if strings.HasPrefix(st.Message(), storage.ErrInvalidLabel.Error()) {
			return storage.ErrInvalidLabel
		}
		return storage.ErrInvalidCID
	case codes.DataLoss:
		if st.Message() == storage.ErrImmutable.Error() {
			return storage.ErrImmutable
		}
		return storage.ErrCIDMismatch
	default:
		return err
	}
}
