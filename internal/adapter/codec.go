package adapter

import (
	"encoding/json"

	"github.com/gowebpki/jcs"
)

// JSON encodes snapshots, event payloads and registry files
//
//go:generate mockgen -source=codec.go -destination=../mocks/codec.go -package=mocks -mock_names=JSON=MockJSON,JCS=MockJCS
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// JCS canonicalizes JSON (RFC 8785) so that equal event payloads hash to equal checksums
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

type stdJSON struct{}

// NewJSON creates a JSON codec backed by encoding/json
func NewJSON() JSON {
	return stdJSON{}
}

func (stdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

type canonicalJSON struct{}

// NewJCS creates a canonicalizer backed by gowebpki/jcs
func NewJCS() JCS {
	return canonicalJSON{}
}

func (canonicalJSON) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}
