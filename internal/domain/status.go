package domain

// StatusClass is the retry classification of an API response.
type StatusClass int

const (
	// StatusOK covers 2xx responses.
	StatusOK StatusClass = iota

	// StatusNotFound covers 404. The resource is already gone, so a
	// delete that hits it is treated as a success.
	StatusNotFound

	// StatusRateLimited covers 429. Transient, retried with backoff.
	StatusRateLimited

	// StatusServerError covers 5xx. Transient, retried with backoff.
	// Per-call timeouts and envelope-level failures on a 2xx response
	// are classified here as well.
	StatusServerError

	// StatusClientError covers any other 4xx. Non-retryable: it signals
	// a token scope or configuration problem, not a per-item issue.
	StatusClientError
)

func (c StatusClass) String() string {
	switch c {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusRateLimited:
		return "RATE_LIMITED"
	case StatusServerError:
		return "SERVER_ERROR"
	case StatusClientError:
		return "CLIENT_ERROR"
	}
	return "UNKNOWN"
}

// Transient reports whether the class is expected to resolve on retry.
func (c StatusClass) Transient() bool {
	return c == StatusRateLimited || c == StatusServerError
}

// ClassifyStatus maps an HTTP status code to its retry classification.
func ClassifyStatus(status int) StatusClass {
	switch {
	case status >= 200 && status < 300:
		return StatusOK
	case status == 404:
		return StatusNotFound
	case status == 429:
		return StatusRateLimited
	case status >= 500:
		return StatusServerError
	case status >= 400:
		return StatusClientError
	}
	return StatusServerError
}
