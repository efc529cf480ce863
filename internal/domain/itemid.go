package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// ItemIDPrefix tags every derived line-item id.
const ItemIDPrefix = "item-"

// itemIDLength is the full length of a well-formed id: prefix plus 32 hex
// characters of MD5 digest.
const itemIDLength = len(ItemIDPrefix) + 2*md5.Size

// DeriveItemID computes the content-addressed id for a product: the title and
// descriptive text joined with a space, lowercased, every space replaced with
// a hyphen, trimmed, hashed with MD5 and rendered as lowercase hex. The same
// title/text pair always yields the same id, which doubles as the cart's
// deduplication key. MD5 is used purely as a stable hash here; nothing trusts
// it.
func DeriveItemID(title, text string) string {
	key := strings.ToLower(title + " " + text)
	key = strings.ReplaceAll(key, " ", "-")
	key = strings.TrimSpace(key)
	sum := md5.Sum([]byte(key))
	return ItemIDPrefix + hex.EncodeToString(sum[:])
}

// WellFormedItemID reports whether id has the shape of a derived id. This is
// a length check only: a malformed string of the right length passes.
func WellFormedItemID(id string) bool {
	return len(id) == itemIDLength
}
