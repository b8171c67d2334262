package gensdk

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	billy "github.com/go-git/go-billy/v5"

	"github.com/spacedriveapp/gensdk/api"
	"github.com/spacedriveapp/gensdk/internal/jsonrpc"
)

// fatalError marks conditions with no safe continuation: a broken host
// contract or an unusable environment. Run reports them and aborts; they
// never become protocol error responses.
type fatalError struct{ err error }

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

func fatalf(format string, args ...any) error {
	return &fatalError{err: fmt.Errorf(format, args...)}
}

func isFatal(err error) bool {
	var f *fatalError
	return errors.As(err, &f)
}

type sessionState int

const (
	// stateHandshaking accepts any number of non-generate requests.
	stateHandshaking sessionState = iota
	// stateGenerated means the generate request was processed and its
	// response is the session's last.
	stateGenerated
	// stateTerminated means the session is over; no further input is read.
	stateTerminated
)

// session is one bounded conversation with a host: any number of handshake
// queries followed by exactly one generate request.
type session struct {
	gen   *Generator
	fs    billy.Filesystem
	state sessionState
}

// run drives a full session over the given streams. The returned error is
// always fatal.
func (g *Generator) run(in io.Reader, out io.Writer, fs billy.Filesystem) error {
	s := &session{gen: g, fs: fs, state: stateHandshaking}
	reader := bufio.NewReader(in)

	for s.state != stateTerminated {
		line, err := reader.ReadBytes('\n')
		if err != nil && (err != io.EOF || len(bytes.TrimSpace(line)) == 0) {
			return fmt.Errorf("read engine request: %w", err)
		}

		resp, err := s.handle(line)
		if err != nil {
			return err
		}

		data, err := json.Marshal(resp)
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		data = append(data, '\n')
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("write response: %w", err)
		}

		if s.state == stateGenerated {
			s.state = stateTerminated
		}
	}

	return nil
}

// handle dispatches one request. A returned error is fatal; recoverable
// generation failures come back as error responses.
func (s *session) handle(line []byte) (*jsonrpc.Response, error) {
	req, err := jsonrpc.Decode(line)
	if err != nil {
		// the host never sends malformed input; if it did, the contract is
		// broken and there is nobody sane left to answer to
		return nil, err
	}

	switch req.Method {
	case "getManifest":
		return jsonrpc.NewResult(req.ID, jsonrpc.ManifestResponse{
			Manifest: jsonrpc.Manifest{
				PrettyName:    s.gen.Name,
				DefaultOutput: s.gen.DefaultOutput,
			},
		}), nil

	case "generate":
		input, err := decodeEngineInput(req.Params)
		if err != nil {
			// a payload the plugin cannot decode means host and plugin
			// disagree on the protocol; the host cannot recover from that
			return nil, err
		}

		s.state = stateGenerated

		if err := s.gen.Execute(s.fs, input); err != nil {
			if isFatal(err) {
				return nil, err
			}
			return jsonrpc.NewError(req.ID, 0, err.Error()), nil
		}
		return jsonrpc.NewResult(req.ID, nil), nil

	default:
		return jsonrpc.NewError(req.ID, 0,
			fmt.Sprintf("%s cannot handle method %s", s.gen.Name, req.Method)), nil
	}
}

// decodeEngineInput decodes the generate payload, naming the failing field
// path when the decoder can identify it.
func decodeEngineInput(params json.RawMessage) (*api.EngineInput, error) {
	var input api.EngineInput
	if err := json.Unmarshal(params, &input); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, fmt.Errorf("decode engine input at %s: %w", typeErr.Field, err)
		}
		return nil, fmt.Errorf("decode engine input: %w", err)
	}
	return &input, nil
}
