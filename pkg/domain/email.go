package domain

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Email holds the fields the mail client integration scrapes from a rendered
// message. Body may be plain text or HTML-ish.
type Email struct {
	ID      string
	From    string
	To      string
	Date    string
	Subject string
	Body    string
}

// Features is the request payload for the phishing classifier. From, To and
// Date are passed through untouched.
type Features struct {
	ID                 string
	From               string
	To                 string
	Date               string
	HasPhishyKeywords  bool
	Domains            []string
	RegistrableDomains []string
}

// Decode reads an Email from a JSON object. Unknown fields are skipped and
// null values decode as empty strings.
func (e *Email) Decode(d *jx.Decoder) error {
	if e == nil {
		return errors.New("decode Email to nil")
	}

	return d.Obj(func(d *jx.Decoder, key string) error {
		var dst *string
		switch key {
		case "id":
			dst = &e.ID
		case "from":
			dst = &e.From
		case "to":
			dst = &e.To
		case "date":
			dst = &e.Date
		case "subject":
			dst = &e.Subject
		case "body":
			dst = &e.Body
		default:
			return d.Skip()
		}

		v, err := decodeOptString(d)
		if err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}
		*dst = v

		return nil
	})
}

// DecodeEmail decodes a single JSON document into an Email. Anything but
// whitespace after the object is an error.
func DecodeEmail(data []byte) (Email, error) {
	if err := jx.DecodeBytes(data).Validate(); err != nil {
		return Email{}, errors.Wrap(err, "validate email")
	}

	var e Email
	if err := e.Decode(jx.DecodeBytes(data)); err != nil {
		return Email{}, errors.Wrap(err, "decode email")
	}

	return e, nil
}

func decodeOptString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	return d.Str()
}

// Encode writes the classifier payload. "domains" is always an array; "id"
// and "registrable_domains" are only written when set.
func (f Features) Encode(e *jx.Encoder) {
	e.ObjStart()
	if f.ID != "" {
		e.FieldStart("id")
		e.Str(f.ID)
	}
	e.FieldStart("from")
	e.Str(f.From)
	e.FieldStart("to")
	e.Str(f.To)
	e.FieldStart("date")
	e.Str(f.Date)
	e.FieldStart("has_phishy_keywords")
	e.Bool(f.HasPhishyKeywords)
	e.FieldStart("domains")
	encodeStrings(e, f.Domains)
	if f.RegistrableDomains != nil {
		e.FieldStart("registrable_domains")
		encodeStrings(e, f.RegistrableDomains)
	}
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (f Features) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	f.Encode(&e)

	return e.Bytes(), nil
}

func encodeStrings(e *jx.Encoder, values []string) {
	e.ArrStart()
	for _, v := range values {
		e.Str(v)
	}
	e.ArrEnd()
}
