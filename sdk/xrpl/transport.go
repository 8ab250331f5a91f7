package xrpl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type httpTransport struct {
	url    string
	client *http.Client
}

type rpcRequest struct {
	Method string           `json:"method"`
	Params []map[string]any `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
}

func (t *httpTransport) request(ctx context.Context, command string, params map[string]any) (json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}

	body, err := json.Marshal(rpcRequest{Method: command, Params: []map[string]any{params}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", command, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", command, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s request: %w", command, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, command)
	}

	var decoded rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", command, err)
	}
	if len(decoded.Result) == 0 {
		return nil, fmt.Errorf("empty result for %s", command)
	}

	if err := resultError(decoded.Result); err != nil {
		return nil, err
	}

	return decoded.Result, nil
}

func (t *httpTransport) close() error {
	t.client.CloseIdleConnections()
	return nil
}

type wsTransport struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	nextID uint64
}

type wsResponse struct {
	ID           uint64          `json:"id"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Result       json.RawMessage `json:"result"`
	Error        string          `json:"error"`
	ErrorMessage string          `json:"error_message"`
}

// request writes one command and reads until the response with the matching id arrives.
// Stream messages such as ledgerClosed are skipped.
func (t *wsTransport) request(ctx context.Context, command string, params map[string]any) (json.RawMessage, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	id := t.nextID

	message := maps.Clone(params)
	if message == nil {
		message = map[string]any{}
	}
	message["id"] = id
	message["command"] = command

	deadline, _ := ctx.Deadline()
	if err := t.conn.SetWriteDeadline(deadline); err != nil {
		return nil, err
	}
	if err := t.conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() {
		_ = t.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	if err := t.conn.WriteJSON(message); err != nil {
		return nil, fmt.Errorf("failed to send %s request: %w", command, err)
	}

	for {
		var resp wsResponse
		if err := t.conn.ReadJSON(&resp); err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%s request: %w", command, ctx.Err())
			}
			// the read deadline can fire just before the context records it
			if errors.Is(err, os.ErrDeadlineExceeded) {
				return nil, fmt.Errorf("%s request: %w", command, context.DeadlineExceeded)
			}

			return nil, fmt.Errorf("failed to read %s response: %w", command, err)
		}

		if resp.Type != "response" || resp.ID != id {
			continue
		}

		if resp.Status == "error" || resp.Error != "" {
			return nil, &RPCError{Code: resp.Error, Message: resp.ErrorMessage}
		}

		if err := resultError(resp.Result); err != nil {
			return nil, err
		}

		return resp.Result, nil
	}
}

// close does not take t.mu so that it unblocks a request waiting on a silent node. Close and
// WriteControl are safe to call concurrently with the other connection methods.
func (t *wsTransport) close() error {
	_ = t.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second),
	)

	return t.conn.Close()
}
