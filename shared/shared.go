package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"rooming/shared/cache"
	"rooming/shared/constant"
	"rooming/shared/dto"
	"rooming/shared/failure"
	"rooming/shared/timezone"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// TransformFields converts the non-zero db-tagged fields of a struct into an update map.
// Nil pointers are skipped, so pointer fields express "not supplied".
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// ParseID reads a positive integer identifier from a path or query value.
func ParseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be a positive integer", name))
	}

	return id, nil
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp and returns the calendar date.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if date, err := time.Parse(constant.DateFormat, value); err == nil {
		return date, nil
	}

	stamp, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return time.Date(stamp.Year(), stamp.Month(), stamp.Day(), 0, 0, 0, 0, time.UTC), nil
}

func FormatDate(date time.Time) string {
	if date.IsZero() {
		return constant.Empty
	}

	return date.Format(constant.DateFormat)
}

func FormatTimestamp(stamp time.Time) string {
	if stamp.IsZero() {
		return constant.Empty
	}

	return timezone.Format(stamp, constant.TimestampFormat)
}

func BuildCacheKey(prefix string, parts ...any) string {
	keys := []string{prefix}

	for _, part := range parts {
		keys = append(keys, fmt.Sprint(part))
	}

	return strings.Join(keys, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from any JSON-encodable query value.
func BuildCacheKeyWithQuery(prefix string, query any) string {
	raw, err := json.Marshal(query)
	if err != nil {
		raw = fmt.Appendf(nil, "%+v", query)
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:8]))
}

// InvalidateCaches removes every key under prefix. Failures are logged, never returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func IsUniqueViolation(err error) bool {
	return pqErrorCode(err) == constant.PqErrorCodeUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return pqErrorCode(err) == constant.PqErrorCodeFkViolation
}

func pqErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return constant.Empty
}
