package middleware

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	// A provisional lock older than this is assumed orphaned (handler
	// crashed before storing the final response) and expires on its own.
	provisionalLockTTL = 60 * time.Second
	// Tolerated client/server clock drift on Ax-Request-At.
	maxClockSkew = 10 * time.Minute

	storeTimeout = 2 * time.Second
)

// idempRecord is what lives under an idempotency key: first the
// in-progress marker written by SetNX, then the captured response.
type idempRecord struct {
	InProgress  bool      `json:"in_progress"`
	Code        int       `json:"code"`
	Body        []byte    `json:"body"`
	BodySHA256  string    `json:"body_sha256"`
	RequestID   string    `json:"request_id"`
	RequestAtMS int64     `json:"request_at_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// replayWriter tees the handler's response into a buffer so a retry of
// the same request can be answered from the store.
type replayWriter struct {
	http.ResponseWriter
	buf  bytes.Buffer
	code int
}

func (w *replayWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *replayWriter) WriteHeader(statusCode int) {
	w.code = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

// readIdempHeaders validates Ax-Request-Id, Ax-Request-At and
// Ax-Client-Id. A non-nil error has already been written to the client.
func readIdempHeaders(c echo.Context) (clientID, requestID string, requestAt time.Time, err error) {
	req := c.Request()

	requestID = strings.TrimSpace(req.Header.Get("Ax-Request-Id"))
	switch {
	case requestID == "":
		return "", "", time.Time{}, badRequest(c, "missing Ax-Request-Id")
	case !isValidRequestID(requestID):
		return "", "", time.Time{}, badRequest(c, "invalid Ax-Request-Id format")
	}

	requestAt, perr := parseRequestAt(req.Header.Get("Ax-Request-At"))
	if perr != nil {
		return "", "", time.Time{}, badRequest(c, perr.Error())
	}
	now := utcNow()
	if requestAt.Before(now.Add(-maxClockSkew)) || requestAt.After(now.Add(maxClockSkew)) {
		return "", "", time.Time{}, badRequest(c, "Ax-Request-At too skewed")
	}

	clientID = strings.TrimSpace(req.Header.Get("Ax-Client-Id"))
	switch {
	case clientID == "":
		return "", "", time.Time{}, badRequest(c, "missing Ax-Client-Id")
	case !reHex32.MatchString(clientID):
		return "", "", time.Time{}, badRequest(c, "invalid Ax-Client-Id")
	}
	return clientID, requestID, requestAt, nil
}

// Idempotency guards the mutating routes. Payment posting is not
// naturally idempotent: a retried POST must replay the recorded
// response, never allocate twice. Keys scope the request id to method,
// route and client; a reused id with a different body is refused.
func Idempotency(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			clientID, requestID, requestAt, err := readIdempHeaders(c)
			if err != nil {
				return err
			}

			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			req.Body = io.NopCloser(bytes.NewReader(body))
			digest := sha256Hex(body)

			key := idempKey(req.Method, c.Path(), clientID, requestID)
			ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
			defer cancel()

			acquired, err := lockProvisional(ctx, rdb, key, idempRecord{
				InProgress:  true,
				BodySHA256:  digest,
				RequestID:   requestID,
				RequestAtMS: requestAt.UnixMilli(),
				CreatedAt:   utcNow(),
			})
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "idempotency store unavailable"})
			}

			if !acquired {
				prior, ferr := fetchRecord(ctx, rdb, key)
				if ferr != nil {
					log.Printf("idempotency: fetch %s: %v", key, ferr)
				}
				if prior.BodySHA256 != "" && prior.BodySHA256 != digest {
					return c.JSON(http.StatusConflict, map[string]string{"error": "Ax-Request-Id reused with different body"})
				}
				if !prior.InProgress && prior.Code != 0 && len(prior.Body) > 0 {
					return c.Blob(prior.Code, echo.MIMEApplicationJSON, prior.Body)
				}
				return c.JSON(http.StatusConflict, map[string]string{"error": "request is already in progress"})
			}

			writer := &replayWriter{ResponseWriter: c.Response().Writer, code: http.StatusOK}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			// The request context may already be done; the final record
			// must land regardless.
			_ = storeFinal(context.Background(), rdb, key, idempRecord{
				Code:        writer.code,
				Body:        writer.buf.Bytes(),
				BodySHA256:  digest,
				RequestID:   requestID,
				RequestAtMS: requestAt.UnixMilli(),
				CreatedAt:   utcNow(),
			}, ttl)
			return nil
		}
	}
}
