package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func utcNow() time.Time { return time.Now().UTC() }

// idempKey scopes a request id to method, route and client, so the same
// id may be reused across different endpoints or callers.
func idempKey(method, path, clientID, requestID string) string {
	return "idemp:ax:" + strings.ToLower(method) + ":" + path + ":" + clientID + ":" + requestID
}

// isValidRequestID accepts a v1-v5 UUID or a bare 32-char hex string,
// case-insensitively.
func isValidRequestID(id string) bool {
	id = strings.ToLower(strings.TrimSpace(id))
	return reUUID.MatchString(id) || reHex32.MatchString(id)
}

// parseRequestAt reads the Ax-Request-At header. Accepted forms: epoch
// seconds, epoch milliseconds, or RFC3339/RFC3339Nano carrying an
// explicit zone. A naive timestamp with no zone is rejected outright
// rather than guessed at.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing Ax-Request-At")
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		// Anything above ~Sep 2001 in ms is unreachable as seconds.
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("Ax-Request-At must be epoch (s/ms) or RFC3339 with timezone")
}

func lockProvisional(ctx context.Context, rdb *redis.Client, key string, rec idempRecord) (bool, error) {
	payload, _ := json.Marshal(rec)
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func fetchRecord(ctx context.Context, rdb *redis.Client, key string) (idempRecord, error) {
	var rec idempRecord
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return rec, err
	}
	_ = json.Unmarshal(raw, &rec)
	return rec, nil
}

func storeFinal(ctx context.Context, rdb *redis.Client, key string, rec idempRecord, ttl time.Duration) error {
	payload, _ := json.Marshal(rec)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
