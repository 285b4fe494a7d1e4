package erract

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"
)

// Convert maps a platform error to an erract error, classifying the source's
// native category into a (kind, status) pair and keeping the source as the
// shared cause. Errors that already are erract errors pass through
// unchanged; nil converts to nil.
//
// The mapping is deliberately conservative: anything unrecognized becomes
// KindUnexpected with StatusPersistent, which is never retried.
func Convert(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	kind, status := classify(err)
	return Wrap(err, kind, status, err.Error())
}

// classify maps well-known platform error categories to (kind, status).
func classify(err error) (ErrorKind, ErrorStatus) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound, StatusPermanent
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied, StatusPermanent
	case errors.Is(err, fs.ErrExist),
		errors.Is(err, fs.ErrClosed):
		return KindUnexpected, StatusPermanent
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, os.ErrDeadlineExceeded):
		return KindTimeout, StatusTemporary
	case errors.Is(err, context.Canceled):
		return KindUnexpected, StatusPermanent
	case errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.ErrClosedPipe):
		return KindUnexpected, StatusTemporary
	case errors.Is(err, strconv.ErrSyntax),
		errors.Is(err, strconv.ErrRange):
		return KindValidation, StatusPermanent
	}

	// AddrError satisfies net.Error, so the malformed-address check has to
	// come before the generic network branch.
	var addrErr *net.AddrError
	if errors.As(err, &addrErr) {
		return KindValidation, StatusPermanent
	}
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		return KindValidation, StatusPermanent
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout, StatusTemporary
		}
		return KindUnexpected, StatusTemporary
	}

	return KindUnexpected, StatusPersistent
}
