package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = time.DateOnly

// Cursor is the keyset position of the last row returned on a page.
// Listings ordered by (date DESC, id DESC) resume strictly after it.
type Cursor struct {
	Date string
	ID   int64
}

// EncodeToken creates an opaque, URL-safe page token from a cursor.
func EncodeToken(c Cursor) string {
	return EncodeMultiFieldToken(c.Date, strconv.FormatInt(c.ID, 10))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return Cursor{}, err
	}
	if len(parts) != 2 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	if _, err := time.Parse(dateLayout, parts[0]); err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (id parse): %q", parts[1])
	}
	return Cursor{Date: parts[0], ID: id}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decoded), "|"), nil
}
