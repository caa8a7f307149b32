package payment

import (
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrBadSignature     = errors.New("invalid payment signature")
	ErrMalformedPayload = errors.New("malformed payment payload")
)

// Verifier signs and verifies provider payloads with the shared private
// key. The provider's documented scheme is
// base64(sha1(privateKey ∥ data ∥ privateKey)); only data and signature
// ever cross the wire.
type Verifier struct {
	privateKey string
}

func NewVerifier(privateKey string) *Verifier {
	return &Verifier{privateKey: privateKey}
}

// Sign computes the signature for an opaque data string.
func (v *Verifier) Sign(data string) string {
	digest := sha1.Sum([]byte(v.privateKey + data + v.privateKey))
	return base64.StdEncoding.EncodeToString(digest[:])
}

// Verify compares the supplied signature against the recomputed one in
// constant time.
func (v *Verifier) Verify(data, signature string) bool {
	expected := v.Sign(data)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// DecodeEvent verifies a webhook payload and, only on a matching
// signature, base64-decodes and parses it into an Event. Verification
// fails closed: nothing is decoded on mismatch. A payload that carries a
// valid signature but does not decode is a hard error, handled without
// crashing the caller.
func (v *Verifier) DecodeEvent(data, signature string) (*Event, error) {
	if !v.Verify(data, signature) {
		return nil, ErrBadSignature
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return &event, nil
}

// EncodePayload serializes an arbitrary provider request as base64 JSON
// together with its signature, for building checkout redirects.
func (v *Verifier) EncodePayload(payload any) (data, signature string, err error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}
	data = base64.StdEncoding.EncodeToString(raw)
	return data, v.Sign(data), nil
}
