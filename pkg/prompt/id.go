package prompt

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const customPrefix = "custom-"

// ID identifies a prompt across the built-in catalog and the custom
// collection. It is a tagged variant: built-in prompts carry a small
// catalog sequence number, custom prompts carry their creation time in
// unix milliseconds. Both reduce to a single numeric sort key so recency
// ordering is a total order over the merged collection.
type ID struct {
	custom bool
	key    int64
}

// StaticID makes an identity for a built-in catalog prompt.
func StaticID(seq int64) ID {
	return ID{key: seq}
}

// CustomID makes an identity for a user-authored prompt from its creation
// time in unix milliseconds.
func CustomID(createdAt int64) ID {
	return ID{custom: true, key: createdAt}
}

// ParseID decodes the string form produced by String.
func ParseID(s string) (ID, error) {
	raw := strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(raw, customPrefix); ok {
		key, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return ID{}, fmt.Errorf("prompt: invalid custom id %q: %w", s, err)
		}
		return CustomID(key), nil
	}
	key, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("prompt: invalid id %q: %w", s, err)
	}
	return StaticID(key), nil
}

// Custom reports whether the identity belongs to a user-authored prompt.
func (id ID) Custom() bool {
	return id.custom
}

// SortKey is the numeric recency key: catalog sequence for built-in
// prompts, creation millis for custom ones. Custom prompts always sort
// newer than the catalog.
func (id ID) SortKey() int64 {
	return id.key
}

// IsZero reports an unset identity.
func (id ID) IsZero() bool {
	return !id.custom && id.key == 0
}

func (id ID) String() string {
	if id.custom {
		return customPrefix + strconv.FormatInt(id.key, 10)
	}
	return strconv.FormatInt(id.key, 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
