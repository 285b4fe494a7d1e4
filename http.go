package erract

import "strconv"

// httpClass discriminates the HTTP catalog entries.
type httpClass uint8

const (
	httpClientError httpClass = iota
	httpServerError
	httpRateLimited
	httpNetworkError
	httpTLSError
	httpInvalidURL
	httpRedirectLoop
	httpTooManyRedirects
	httpRequestTimeout
	httpEncodingError
	httpDecodingError
)

// HTTPErrorKind is the closed catalog of HTTP failure kinds, categorized by
// what the caller should do. It implements ErrorKind. The client-error and
// server-error entries additionally carry the HTTP status code.
type HTTPErrorKind struct {
	class  httpClass
	status int
}

var (
	// HTTPRateLimited: the server asked us to slow down. Retry with backoff.
	HTTPRateLimited = HTTPErrorKind{class: httpRateLimited}
	// HTTPNetworkError: connectivity failure. May be temporary.
	HTTPNetworkError = HTTPErrorKind{class: httpNetworkError}
	// HTTPTLSError: SSL/TLS handshake failure. May be temporary.
	HTTPTLSError = HTTPErrorKind{class: httpTLSError}
	// HTTPInvalidURL: URL parsing failure. Fix the URL.
	HTTPInvalidURL = HTTPErrorKind{class: httpInvalidURL}
	// HTTPRedirectLoop: redirect loop detected. Fix the redirect config.
	HTTPRedirectLoop = HTTPErrorKind{class: httpRedirectLoop}
	// HTTPTooManyRedirects: redirect limit exceeded. Fix the redirect config.
	HTTPTooManyRedirects = HTTPErrorKind{class: httpTooManyRedirects}
	// HTTPRequestTimeout: the request timed out. Retry with a longer timeout.
	HTTPRequestTimeout = HTTPErrorKind{class: httpRequestTimeout}
	// HTTPEncodingError: content encoding failure. May be temporary.
	HTTPEncodingError = HTTPErrorKind{class: httpEncodingError}
	// HTTPDecodingError: response decoding failure. Fix the response handling.
	HTTPDecodingError = HTTPErrorKind{class: httpDecodingError}
)

// HTTPClientError returns the kind for a 4xx response with the given status.
func HTTPClientError(status int) HTTPErrorKind {
	return HTTPErrorKind{class: httpClientError, status: status}
}

// HTTPServerError returns the kind for a 5xx response with the given status.
func HTTPServerError(status int) HTTPErrorKind {
	return HTTPErrorKind{class: httpServerError, status: status}
}

// FromHTTPStatus maps an HTTP status code to its kind: 429 to rate-limited,
// 4xx to client error, 5xx (and anything below 400) to server error.
func FromHTTPStatus(status int) HTTPErrorKind {
	switch {
	case status == 429:
		return HTTPRateLimited
	case status >= 400 && status <= 499:
		return HTTPClientError(status)
	case status >= 500 && status <= 599:
		return HTTPServerError(status)
	case status >= 400:
		return HTTPClientError(status)
	default:
		return HTTPServerError(status)
	}
}

// IsRetryable reports the static retry hint for the kind: server errors,
// rate limiting, network, TLS, timeouts and encoding failures are worth
// retrying; everything else needs a fix first.
func (k HTTPErrorKind) IsRetryable() bool {
	switch k.class {
	case httpServerError, httpRateLimited, httpNetworkError, httpTLSError,
		httpRequestTimeout, httpEncodingError:
		return true
	default:
		return false
	}
}

// StatusCode returns the HTTP status code for client and server errors.
// ok is false for the other entries, which carry no status.
func (k HTTPErrorKind) StatusCode() (status int, ok bool) {
	if k.class == httpClientError || k.class == httpServerError {
		return k.status, true
	}
	return 0, false
}

// IsClientError reports whether this is a 4xx client error.
func (k HTTPErrorKind) IsClientError() bool {
	return k.class == httpClientError
}

// IsServerError reports whether this is a 5xx server error.
func (k HTTPErrorKind) IsServerError() bool {
	return k.class == httpServerError
}

// MachineString returns the stable wire representation, prefixed "http_".
// Status-carrying entries embed the code, e.g. "http_client_error_404".
func (k HTTPErrorKind) MachineString() string {
	switch k.class {
	case httpClientError:
		return "http_client_error_" + strconv.Itoa(k.status)
	case httpServerError:
		return "http_server_error_" + strconv.Itoa(k.status)
	case httpRateLimited:
		return "http_rate_limited"
	case httpNetworkError:
		return "http_network_error"
	case httpTLSError:
		return "http_tls_error"
	case httpInvalidURL:
		return "http_invalid_url"
	case httpRedirectLoop:
		return "http_redirect_loop"
	case httpTooManyRedirects:
		return "http_too_many_redirects"
	case httpRequestTimeout:
		return "http_request_timeout"
	case httpEncodingError:
		return "http_encoding_error"
	case httpDecodingError:
		return "http_decoding_error"
	default:
		return "http_unknown"
	}
}

// String returns the human-readable name of the kind.
func (k HTTPErrorKind) String() string {
	switch k.class {
	case httpClientError:
		return "client error: " + strconv.Itoa(k.status)
	case httpServerError:
		return "server error: " + strconv.Itoa(k.status)
	case httpRateLimited:
		return "rate limited"
	case httpNetworkError:
		return "network error"
	case httpTLSError:
		return "TLS error"
	case httpInvalidURL:
		return "invalid URL"
	case httpRedirectLoop:
		return "redirect loop"
	case httpTooManyRedirects:
		return "too many redirects"
	case httpRequestTimeout:
		return "request timeout"
	case httpEncodingError:
		return "encoding error"
	case httpDecodingError:
		return "decoding error"
	default:
		return "unknown"
	}
}
