package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/codegenio/codegenio/internal/llm"
)

func TestAskSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "¡Una variable es como una cajita!"})
	svc := NewService(mock, time.Second)

	reply := svc.Ask(context.Background(), "¿Qué es una variable?", "contenido de la lección", "Las Variables")
	if reply.Text != "¡Una variable es como una cajita!" {
		t.Errorf("reply = %q", reply.Text)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != systemPrompt {
		t.Error("request must carry the tutor system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("unexpected messages: %+v", req.Messages)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{`"Las Variables"`, "contenido de la lección", `"¿Qué es una variable?"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAskNilProvider(t *testing.T) {
	svc := NewService(nil, 0)
	reply := svc.Ask(context.Background(), "hola", "", "")
	if reply.Text != msgNoProvider {
		t.Errorf("reply = %q, want the not-configured apology", reply.Text)
	}
}

func TestAskErrorApologies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"rate limit", &llm.ErrRateLimit{RetryAfter: time.Second}, msgRateLimit},
		{"unavailable", &llm.ErrProviderUnavailable{}, msgConnection},
		{"generic", errors.New("timeout"), msgConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Err: tt.err})
			svc := NewService(mock, time.Second)

			reply := svc.Ask(context.Background(), "hola", "", "")
			if reply.Text != tt.want {
				t.Errorf("reply = %q, want %q", reply.Text, tt.want)
			}
		})
	}
}

func TestAskEmptyReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "   \n  "})
	svc := NewService(mock, time.Second)

	reply := svc.Ask(context.Background(), "hola", "", "")
	if reply.Text != msgEmpty {
		t.Errorf("reply = %q, want the empty-reply apology", reply.Text)
	}
}
