package model

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// TitleToken is the persisted form of a window title: the URL-safe base64 of
// the UTF-8 title, wrapped as a quoted JSON string. The token is the identity
// key when matching saved records against open windows.
type TitleToken string

// EncodeTitle returns the token for a window title.
func EncodeTitle(title string) TitleToken {
	b, _ := json.Marshal(base64.URLEncoding.EncodeToString([]byte(title)))
	return TitleToken(b)
}

// DecodeTitle returns the window title carried by the token. Bytes that are
// not valid UTF-8 are dropped.
func DecodeTitle(tok TitleToken) (string, error) {
	s := string(tok)
	var unquoted string
	if err := json.Unmarshal([]byte(s), &unquoted); err == nil {
		s = unquoted
	}
	s = strings.Trim(s, "\"")

	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
		if err != nil {
			return "", fmt.Errorf("decode title token %s: %w", tok, err)
		}
	}
	return strings.ToValidUTF8(string(raw), ""), nil
}

// Title decodes the token, returning an empty string if it is malformed.
func (t TitleToken) Title() string {
	s, _ := DecodeTitle(t)
	return s
}
