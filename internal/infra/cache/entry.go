package cache

import (
	"encoding/json"
	"time"

	"seckill-guard/internal/pkg/errs"
)

type Kind string

const (
	// Negative entry, stored with the short null TTL.
	KindEmpty Kind = "empty"
	// Payload stored with a physical TTL.
	KindValue Kind = "value"
	// Payload with an embedded expiry, stored without a physical TTL.
	KindLogical Kind = "logical"
)

var errCorruptEntry = errs.New("corrupt cache entry")

type Entry struct {
	Kind     Kind            `json:"kind"`
	ExpireAt *time.Time      `json:"expire_at,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

func (e Entry) ExpiredAt(now time.Time) bool {
	return e.Kind == KindLogical && e.ExpireAt != nil && !now.Before(*e.ExpireAt)
}

func encodeEntry(kind Kind, payload any, expireAt *time.Time) (string, error) {
	e := Entry{Kind: kind, ExpireAt: expireAt}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return "", errs.Wrap(err, "marshal cache payload")
		}
		e.Payload = raw
	}
	b, err := json.Marshal(e)
	if err != nil {
		return "", errs.Wrap(err, "marshal cache entry")
	}
	return string(b), nil
}

func decodeEntry(raw string) (Entry, error) {
	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return Entry{}, errs.Mark(errs.Wrap(err, "unmarshal cache entry"), errCorruptEntry)
	}
	switch e.Kind {
	case KindEmpty:
		return e, nil
	case KindValue, KindLogical:
		if len(e.Payload) == 0 {
			return Entry{}, errs.Mark(errs.Newf("cache entry of kind %q has no payload", e.Kind), errCorruptEntry)
		}
		if e.Kind == KindLogical && e.ExpireAt == nil {
			return Entry{}, errs.Mark(errs.New("logical cache entry without expire_at"), errCorruptEntry)
		}
		return e, nil
	default:
		return Entry{}, errs.Mark(errs.Newf("unknown cache entry kind %q", e.Kind), errCorruptEntry)
	}
}

func decodePayload[T any](e Entry) (T, error) {
	var v T
	if err := json.Unmarshal(e.Payload, &v); err != nil {
		return v, errs.Mark(errs.Wrap(err, "unmarshal cache payload"), errCorruptEntry)
	}
	return v, nil
}
