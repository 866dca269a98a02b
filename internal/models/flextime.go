package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexTime is a timestamp field as it actually appears in scan documents:
// a native BSON datetime, an ISO-ish string, a {seconds, nanos} document
// left over from a Firestore export, an epoch number, or missing entirely.
// Decoding never fails; anything unresolvable is simply unset.
type FlexTime struct {
	t  time.Time
	ok bool
}

func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{t: t, ok: true}
}

// Time returns the resolved instant and whether one was resolved.
func (ft FlexTime) Time() (time.Time, bool) {
	return ft.t, ft.ok
}

func (ft FlexTime) IsSet() bool {
	return ft.ok
}

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimeString(s string) (time.Time, bool) {
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (ft *FlexTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	ft.t, ft.ok = time.Time{}, false
	rv := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.DateTime:
		ft.t, ft.ok = rv.Time(), true
	case bsontype.String:
		ft.t, ft.ok = parseTimeString(rv.StringValue())
	case bsontype.EmbeddedDocument:
		// Firestore exports serialize timestamps as {seconds, nanos} or
		// {_seconds, _nanoseconds} documents.
		var ts struct {
			Seconds  int64 `bson:"seconds"`
			Nanos    int64 `bson:"nanos"`
			XSeconds int64 `bson:"_seconds"`
			XNanos   int64 `bson:"_nanoseconds"`
		}
		if err := rv.Unmarshal(&ts); err == nil {
			if ts.Seconds != 0 {
				ft.t, ft.ok = time.Unix(ts.Seconds, ts.Nanos).UTC(), true
			} else if ts.XSeconds != 0 {
				ft.t, ft.ok = time.Unix(ts.XSeconds, ts.XNanos).UTC(), true
			}
		}
	case bsontype.Int64:
		ft.t, ft.ok = time.Unix(rv.Int64(), 0).UTC(), true
	case bsontype.Int32:
		ft.t, ft.ok = time.Unix(int64(rv.Int32()), 0).UTC(), true
	case bsontype.Double:
		ft.t, ft.ok = time.Unix(int64(rv.Double()), 0).UTC(), true
	}
	// Null, undefined and anything else stay unset. Never an error: a bad
	// timestamp must not fail the whole document decode.
	return nil
}

func (ft FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !ft.ok {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(ft.t)
}

func (ft FlexTime) MarshalJSON() ([]byte, error) {
	if !ft.ok {
		return []byte("null"), nil
	}
	return []byte(`"` + ft.t.UTC().Format(time.RFC3339) + `"`), nil
}
