package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProviderFIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)

	req := Request{Messages: []Message{{Role: RoleUser, Content: "hola"}}}

	resp, err := mock.Generate(context.Background(), req)
	if err != nil || resp.Text != "first" {
		t.Errorf("first call = (%v, %v)", resp, err)
	}
	resp, err = mock.Generate(context.Background(), req)
	if err != nil || resp.Text != "second" {
		t.Errorf("second call = (%v, %v)", resp, err)
	}

	// Queue exhausted.
	_, err = mock.Generate(context.Background(), req)
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}

	if mock.CallCount() != 3 {
		t.Errorf("CallCount() = %d, want 3", mock.CallCount())
	}
}

func TestMockProviderError(t *testing.T) {
	wantErr := &ErrRateLimit{}
	mock := NewMockProvider(MockResponse{Err: wantErr})

	_, err := mock.Generate(context.Background(), Request{})
	var rate *ErrRateLimit
	if !errors.As(err, &rate) {
		t.Errorf("expected ErrRateLimit, got %v", err)
	}
}
