// Package jsonrpc carries the line-delimited request/response envelope
// spoken with the host: one JSON object per line, requests on stdin,
// responses on stderr.
package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// Request is one host request. ID and Params stay raw: the ID is echoed
// back byte-for-byte (hosts send numbers or strings), and Params is decoded
// by whoever dispatches the method.
type Request struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// Decode parses one request line.
func Decode(line []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &req, nil
}

// ErrorBody is the error half of a response.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Response is the reply to one request. Exactly one of result or error is
// on the wire; a null result is still a result and is emitted explicitly.
type Response struct {
	ID     json.RawMessage
	Result any
	Error  *ErrorBody
}

// NewResult builds a success response; result may be nil for a null result.
func NewResult(id json.RawMessage, result any) *Response {
	return &Response{ID: id, Result: result}
}

// NewError builds an error response.
func NewError(id json.RawMessage, code int, message string) *Response {
	return &Response{ID: id, Error: &ErrorBody{Code: code, Message: message}}
}

// MarshalJSON keeps the success/error halves mutually exclusive while still
// writing `"result": null` on null results.
func (r *Response) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(struct {
			JSONRPC string          `json:"jsonrpc"`
			ID      json.RawMessage `json:"id"`
			Error   *ErrorBody      `json:"error"`
		}{"2.0", r.ID, r.Error})
	}
	return json.Marshal(struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id"`
		Result  any             `json:"result"`
	}{"2.0", r.ID, r.Result})
}

// Manifest is the identity a generator advertises to its host.
type Manifest struct {
	PrettyName         string   `json:"prettyName"`
	DefaultOutput      string   `json:"defaultOutput"`
	Denylists          []string `json:"denylists,omitempty"`
	RequiresGenerators []string `json:"requiresGenerators,omitempty"`
	RequiresEngines    []string `json:"requiresEngines,omitempty"`
	Version            string   `json:"version,omitempty"`
}

// ManifestResponse wraps the manifest the way getManifest expects it.
type ManifestResponse struct {
	Manifest Manifest `json:"manifest"`
}
