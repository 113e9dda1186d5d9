package paging

import (
	"encoding/base64"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
)

// Stream marks which sub-stream of a split entity a cursor points into.
type Stream string

const (
	StreamPending   = Stream("pending")
	StreamValidated = Stream("validated")
)

// Cursor is the continuation state of a paginated listing: the tiebreak tuple
// of the last served row plus whatever context is needed to resume (sub-stream
// marker, intra-batch offset). The zero value means "first page".
//
// The same struct serves as the next_page_params response object, as the
// decoded form of the compact page_token, and as the decoded form of the
// legacy flat query parameters.
type Cursor struct {
	BlockNumber      *uint64    `json:"block_number,omitempty"`
	Index            *uint64    `json:"index,omitempty"`
	TransactionIndex *uint64    `json:"transaction_index,omitempty"`
	InsertedAt       *time.Time `json:"inserted_at,omitempty"`
	Hash             string     `json:"hash,omitempty"` // 0x-prefixed hex

	// secondary sorts carry the sort value itself, decimal-encoded
	Fee   *string `json:"fee,omitempty"`
	Value *string `json:"value,omitempty"`

	TokenContract *addr.Address `json:"token_contract,omitempty"`
	TokenID       *string       `json:"token_id,omitempty"`
	ID            *uint64       `json:"id,omitempty"`

	ItemsCount *int `json:"items_count,omitempty"`

	// IndexInBatch resumes serving inside a multi-asset transfer row whose
	// expansion was cut by a page boundary.
	IndexInBatch *int `json:"index_in_batch,omitempty"`

	Stream Stream `json:"stream,omitempty"`
}

// flatCursor is the legacy field set alone. It backs the compact token
// encoding, which must not nest another page_token inside itself.
type flatCursor Cursor

// MarshalJSON emits the flat legacy fields together with the compact token
// under page_token, so a response's next_page_params serves both wire shapes
// and new clients can echo the one value.
func (c *Cursor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		*flatCursor
		PageToken string `json:"page_token,omitempty"`
	}{(*flatCursor)(c), c.Encode()})
}

// Empty reports whether the cursor carries no continuation state at all.
func (c *Cursor) Empty() bool {
	if c == nil {
		return true
	}
	return c.BlockNumber == nil && c.Index == nil && c.TransactionIndex == nil &&
		c.InsertedAt == nil && c.Hash == "" && c.Fee == nil && c.Value == nil &&
		c.TokenContract == nil && c.TokenID == nil && c.ID == nil &&
		c.ItemsCount == nil && c.IndexInBatch == nil && c.Stream == ""
}

// Encode serializes the cursor into the compact page_token form.
func (c *Cursor) Encode() string {
	raw, err := json.Marshal((*flatCursor)(c))
	if err != nil {
		panic(errors.Wrap(err, "marshal cursor")) // struct is always marshalable
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode parses a compact page_token. Decoding is pure; a malformed token
// yields core.ErrInvalidCursor.
func Decode(token string) (*Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, errors.Wrap(core.ErrInvalidCursor, "page_token base64")
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, errors.Wrap(core.ErrInvalidCursor, "page_token json")
	}
	return &c, nil
}

// DecodeQuery extracts a cursor from request query parameters. It accepts
// either the compact page_token or the legacy flat fields (block_number+index,
// inserted_at+hash and friends); both wire shapes decode to the same cursor
// semantics. Absent parameters yield a nil cursor, not an error.
func DecodeQuery(q url.Values, entity core.Entity) (*Cursor, error) {
	if token := q.Get("page_token"); token != "" {
		return Decode(token)
	}

	var (
		c   Cursor
		err error
	)

	if c.BlockNumber, err = legacyUint(q, "block_number"); err != nil {
		return nil, err
	}
	if c.Index, err = legacyUint(q, "index"); err != nil {
		return nil, err
	}
	if c.TransactionIndex, err = legacyUint(q, "transaction_index"); err != nil {
		return nil, err
	}
	if c.ID, err = legacyUint(q, "id"); err != nil {
		return nil, err
	}

	if v := q.Get("inserted_at"); v != "" {
		ts, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, errors.Wrap(core.ErrInvalidCursor, "inserted_at")
		}
		c.InsertedAt = &ts
	}
	if v := q.Get("hash"); v != "" {
		c.Hash = v
	}

	if v := q.Get("fee"); v != "" {
		c.Fee = &v
	}
	if v := q.Get("value"); v != "" {
		c.Value = &v
	}
	if v := q.Get("token_id"); v != "" {
		c.TokenID = &v
	}
	if v := q.Get("token_contract"); v != "" {
		a, err := new(addr.Address).FromString(v)
		if err != nil {
			return nil, errors.Wrap(core.ErrInvalidCursor, "token_contract")
		}
		c.TokenContract = a
	}

	if v := q.Get("items_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrap(core.ErrInvalidCursor, "items_count")
		}
		c.ItemsCount = &n
	}
	if v := q.Get("index_in_batch"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, errors.Wrap(core.ErrInvalidCursor, "index_in_batch")
		}
		c.IndexInBatch = &n
	}

	switch s := Stream(q.Get("stream")); s {
	case "", StreamPending, StreamValidated:
		c.Stream = s
	default:
		return nil, errors.Wrap(core.ErrInvalidCursor, "stream")
	}

	// legacy pending-transaction params carry no stream marker
	if c.Stream == "" && c.InsertedAt != nil && entity == core.EntityTransactions {
		c.Stream = StreamPending
	}

	if c.Empty() {
		return nil, nil
	}
	return &c, nil
}

func legacyUint(q url.Values, name string) (*uint64, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, errors.Wrap(core.ErrInvalidCursor, name)
	}
	return &n, nil
}
