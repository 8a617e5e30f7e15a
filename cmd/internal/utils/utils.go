package utils

import (
	"reflect"
	"strings"
	"time"
)

// TimeLayout is RFC 3339 with a fixed millisecond fraction, the precision
// timestamps are stored with.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(TimeLayout)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// Page is one window over an ordered result set.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// Paginate slices items into pages of size. Pages are 1-based; anything below
// 1 is treated as the first page, and a page past the end is empty.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = len(items)
		if size == 0 {
			size = 1
		}
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := min(start+size, total)

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Sanitize trims every string, *string and []string field of the struct o
// points to.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
